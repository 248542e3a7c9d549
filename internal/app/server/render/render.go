package render

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mkarpov/metricserve/internal/app/server/metrics"
)

// ErrUnknownKind reports a metric whose kind tag is outside the closed
// five-variant set. That is an integration bug, not a per-entry fault:
// it aborts the whole render instead of being skipped.
var ErrUnknownKind = errors.New("unknown metric kind")

// Context carries the per-render options that affect how a single
// metric is formatted. Built fresh per request, never mutated.
type Context struct {
	ShowFullSamples bool
	Unit            DurationUnit
}

// Wire shapes. Struct field order is wire field order, and marshalling
// a fully built struct guarantees an entry is all-or-nothing: a fault
// mid-formatting can never leave a partial fragment in the output.

type counterOut struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type gaugeOut struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type histogramOut struct {
	Type   string     `json:"type"`
	Count  int64      `json:"count"`
	Min    int64      `json:"min"`
	Max    int64      `json:"max"`
	Mean   float64    `json:"mean"`
	StdDev float64    `json:"std_dev"`
	Median float64    `json:"median"`
	P75    float64    `json:"p75"`
	P95    float64    `json:"p95"`
	P98    float64    `json:"p98"`
	P99    float64    `json:"p99"`
	P999   float64    `json:"p999"`
	Values *[]float64 `json:"values,omitempty"`
}

type meterFields struct {
	Count int64   `json:"count"`
	Mean  float64 `json:"mean"`
	M1    float64 `json:"m1"`
	M5    float64 `json:"m5"`
	M15   float64 `json:"m15"`
}

type meterOut struct {
	Type string `json:"type"`
	meterFields
}

type durationOut struct {
	Min    float64    `json:"min"`
	Max    float64    `json:"max"`
	Mean   float64    `json:"mean"`
	StdDev float64    `json:"std_dev"`
	Median float64    `json:"median"`
	P75    float64    `json:"p75"`
	P95    float64    `json:"p95"`
	P98    float64    `json:"p98"`
	P99    float64    `json:"p99"`
	P999   float64    `json:"p999"`
	Values *[]float64 `json:"values,omitempty"`
}

type timerOut struct {
	Type     string      `json:"type"`
	Duration durationOut `json:"duration"`
	Rate     meterFields `json:"rate"`
}

// metered is the rate surface shared by meters and timers.
type metered interface {
	Count() int64
	RateMean() float64
	Rate1() float64
	Rate5() float64
	Rate15() float64
}

// renderMetric routes one metric to its kind-specific formatting and
// returns the wire shape. Faults raised by metric internals, panics
// included, surface as errors so the serializer can drop the entry.
// Gauge evaluation failure is not a fault here: it renders as a
// placeholder value (see evaluateGauge).
func renderMetric(m metrics.Metric, ctx Context, logger *logrus.Logger) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("formatting metric: %v", r)
		}
	}()

	switch m.Kind() {
	case metrics.KindCounter:
		c := m.(metrics.Counter)
		return counterOut{Type: "counter", Count: c.Count()}, nil
	case metrics.KindGauge:
		g := m.(metrics.Gauge)
		return gaugeOut{Type: "gauge", Value: evaluateGauge(g, logger)}, nil
	case metrics.KindHistogram:
		h := m.(metrics.Histogram)
		return renderHistogram(h, ctx), nil
	case metrics.KindMeter:
		mt := m.(metrics.Meter)
		return meterOut{Type: "meter", meterFields: renderMetered(mt)}, nil
	case metrics.KindTimer:
		t := m.(metrics.Timer)
		return renderTimer(t, ctx), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, m.Kind())
	}
}

// evaluateGauge runs the gauge's value function exactly once. The
// function is application code: error returns and panics both collapse
// into a string placeholder so a broken gauge still renders as a
// gauge, and the fault is logged as a warning.
func evaluateGauge(g metrics.Gauge, logger *logrus.Logger) (out any) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Warn("error evaluating gauge")
			out = fmt.Sprintf("error reading gauge: %v", r)
		}
	}()
	v, err := g.Value()
	if err != nil {
		logger.WithError(err).Warn("error evaluating gauge")
		return "error reading gauge: " + err.Error()
	}
	return v
}

// renderHistogram emits histogram aggregates and snapshot quantiles
// as-is. Histogram values are unit-less magnitudes, never durations,
// so no unit conversion applies.
func renderHistogram(h metrics.Histogram, ctx Context) histogramOut {
	snap := h.Snapshot()
	out := histogramOut{
		Type:   "histogram",
		Count:  h.Count(),
		Min:    h.Min(),
		Max:    h.Max(),
		Mean:   h.Mean(),
		StdDev: h.StdDev(),
		Median: snap.Median(),
		P75:    snap.P75(),
		P95:    snap.P95(),
		P98:    snap.P98(),
		P99:    snap.P99(),
		P999:   snap.P999(),
	}
	if ctx.ShowFullSamples {
		values := snap.Values()
		out.Values = &values
	}
	return out
}

// renderTimer emits the duration aggregate and the call-rate aggregate
// as nested objects. Every duration-derived number passes through the
// configured unit; only timers carry time semantics.
func renderTimer(t metrics.Timer, ctx Context) timerOut {
	snap := t.Snapshot()
	u := ctx.Unit
	d := durationOut{
		Min:    u.Convert(float64(t.Min())),
		Max:    u.Convert(float64(t.Max())),
		Mean:   u.Convert(t.Mean()),
		StdDev: u.Convert(t.StdDev()),
		Median: u.Convert(snap.Median()),
		P75:    u.Convert(snap.P75()),
		P95:    u.Convert(snap.P95()),
		P98:    u.Convert(snap.P98()),
		P99:    u.Convert(snap.P99()),
		P999:   u.Convert(snap.P999()),
	}
	if ctx.ShowFullSamples {
		values := u.ConvertAll(snap.Values())
		d.Values = &values
	}
	return timerOut{Type: "timer", Duration: d, Rate: renderMetered(t)}
}

func renderMetered(m metered) meterFields {
	return meterFields{
		Count: m.Count(),
		Mean:  m.RateMean(),
		M1:    m.Rate1(),
		M5:    m.Rate5(),
		M15:   m.Rate15(),
	}
}
