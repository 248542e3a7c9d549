package metrics

import (
	"fmt"
	"time"
)

// Kind identifies the concrete variant of a metric. The set is closed:
// rendering dispatches over it exhaustively, and a value outside this
// enum is an integration bug rather than a runtime condition.
type Kind int

const (
	KindCounter Kind = iota
	KindGauge
	KindHistogram
	KindMeter
	KindTimer
)

func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	case KindHistogram:
		return "histogram"
	case KindMeter:
		return "meter"
	case KindTimer:
		return "timer"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Metric is the common capability tag of all instrument kinds.
type Metric interface {
	Kind() Kind
}

// Counter is an incrementing and decrementing int64 value.
type Counter interface {
	Metric
	Inc(delta int64)
	Count() int64
}

// Gauge is an instantaneous value computed by a user-supplied function.
// The function is untrusted: it may return an error, panic, or take an
// unbounded amount of time.
type Gauge interface {
	Metric
	Value() (float64, error)
}

// Sampling is implemented by instruments that maintain a sample
// reservoir and can produce a point-in-time statistical snapshot.
type Sampling interface {
	Snapshot() *Snapshot
}

// Histogram measures the distribution of a stream of int64 values.
type Histogram interface {
	Metric
	Sampling
	Update(value int64)
	Count() int64
	Min() int64
	Max() int64
	Mean() float64
	StdDev() float64
}

// Meter measures the rate of events over time, in events per second.
type Meter interface {
	Metric
	Mark(n int64)
	Count() int64
	RateMean() float64
	Rate1() float64
	Rate5() float64
	Rate15() float64
}

// Timer measures the distribution of durations and the rate at which
// they are recorded. Recorded values are nanoseconds.
type Timer interface {
	Metric
	Sampling
	Update(d time.Duration)
	Time(fn func())
	Count() int64
	Min() int64
	Max() int64
	Mean() float64
	StdDev() float64
	RateMean() float64
	Rate1() float64
	Rate5() float64
	Rate15() float64
}
