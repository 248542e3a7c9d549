package metrics

import (
	"math"
	"sync"
	"time"
)

// ewmaTickInterval is how often the moving averages fold uncounted
// events into their rate.
const ewmaTickInterval = 5 * time.Second

// ewma is an exponentially weighted moving average over a fixed tick.
type ewma struct {
	alpha     float64
	rate      float64 // events per second
	uncounted int64
	primed    bool
}

func newEWMA(minutes float64) ewma {
	return ewma{alpha: 1 - math.Exp(-ewmaTickInterval.Seconds()/60/minutes)}
}

func (e *ewma) update(n int64) { e.uncounted += n }

func (e *ewma) tick() {
	instant := float64(e.uncounted) / ewmaTickInterval.Seconds()
	e.uncounted = 0
	if e.primed {
		e.rate += e.alpha * (instant - e.rate)
	} else {
		e.rate = instant
		e.primed = true
	}
}

type meter struct {
	mu       sync.Mutex
	count    int64
	start    time.Time
	lastTick time.Time
	a1       ewma
	a5       ewma
	a15      ewma
	now      func() time.Time
}

// NewMeter returns a meter tracking mean rate since creation and
// 1/5/15-minute exponentially weighted moving rates, all in events
// per second.
func NewMeter() Meter {
	return newMeterClock(time.Now)
}

// newMeterClock allows tests to drive time explicitly.
func newMeterClock(now func() time.Time) *meter {
	start := now()
	return &meter{
		start:    start,
		lastTick: start,
		a1:       newEWMA(1),
		a5:       newEWMA(5),
		a15:      newEWMA(15),
		now:      now,
	}
}

func (m *meter) Kind() Kind { return KindMeter }

func (m *meter) Mark(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNecessary()
	m.count += n
	m.a1.update(n)
	m.a5.update(n)
	m.a15.update(n)
}

// tickIfNecessary catches the moving averages up to the current time,
// one whole tick at a time, so idle meters decay correctly.
func (m *meter) tickIfNecessary() {
	for m.now().Sub(m.lastTick) >= ewmaTickInterval {
		m.a1.tick()
		m.a5.tick()
		m.a15.tick()
		m.lastTick = m.lastTick.Add(ewmaTickInterval)
	}
}

func (m *meter) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func (m *meter) RateMean() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	elapsed := m.now().Sub(m.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(m.count) / elapsed
}

func (m *meter) Rate1() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNecessary()
	return m.a1.rate
}

func (m *meter) Rate5() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNecessary()
	return m.a5.rate
}

func (m *meter) Rate15() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNecessary()
	return m.a15.rate
}
