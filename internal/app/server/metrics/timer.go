package metrics

import "time"

type timer struct {
	histogram Histogram
	meter     Meter
}

// NewTimer returns a timer that combines a histogram over nanosecond
// durations with a meter over the call rate.
func NewTimer() Timer {
	return &timer{
		histogram: NewHistogram(DefaultReservoirSize),
		meter:     NewMeter(),
	}
}

func (t *timer) Kind() Kind { return KindTimer }

// Update records one event of the given duration. Negative durations
// (clock skew) are dropped.
func (t *timer) Update(d time.Duration) {
	if d < 0 {
		return
	}
	t.histogram.Update(int64(d))
	t.meter.Mark(1)
}

// Time records the wall-clock duration of fn.
func (t *timer) Time(fn func()) {
	start := time.Now()
	defer func() { t.Update(time.Since(start)) }()
	fn()
}

func (t *timer) Count() int64        { return t.histogram.Count() }
func (t *timer) Min() int64          { return t.histogram.Min() }
func (t *timer) Max() int64          { return t.histogram.Max() }
func (t *timer) Mean() float64       { return t.histogram.Mean() }
func (t *timer) StdDev() float64     { return t.histogram.StdDev() }
func (t *timer) Snapshot() *Snapshot { return t.histogram.Snapshot() }
func (t *timer) RateMean() float64   { return t.meter.RateMean() }
func (t *timer) Rate1() float64      { return t.meter.Rate1() }
func (t *timer) Rate5() float64      { return t.meter.Rate5() }
func (t *timer) Rate15() float64     { return t.meter.Rate15() }
