package metrics

import "sync/atomic"

type counter struct {
	count atomic.Int64
}

// NewCounter returns a counter backed by a single atomic, so writers
// never contend with render-time readers.
func NewCounter() Counter {
	return &counter{}
}

func (c *counter) Kind() Kind { return KindCounter }

func (c *counter) Inc(delta int64) { c.count.Add(delta) }

func (c *counter) Count() int64 { return c.count.Load() }
