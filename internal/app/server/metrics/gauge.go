package metrics

type gauge struct {
	fn func() (float64, error)
}

// NewGauge returns a gauge that computes its value on demand via fn.
// fn runs application code: it may fail, panic, or block, and the
// renderer is responsible for containing that.
func NewGauge(fn func() (float64, error)) Gauge {
	return &gauge{fn: fn}
}

// NewGaugeFunc wraps an infallible value function.
func NewGaugeFunc(fn func() float64) Gauge {
	return &gauge{fn: func() (float64, error) { return fn(), nil }}
}

func (g *gauge) Kind() Kind { return KindGauge }

func (g *gauge) Value() (float64, error) { return g.fn() }
