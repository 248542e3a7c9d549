package metrics

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateMetric is returned when a name is registered twice.
var ErrDuplicateMetric = errors.New("metric already registered")

// Entry is a single named metric in registration order.
type Entry struct {
	Name   string
	Metric Metric
}

// Registry holds named metrics and preserves registration order, so
// repeated renders list entries identically. There is no package-level
// default registry; callers pass one explicitly.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	metrics map[string]Metric
}

func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]Metric)}
}

// Register adds m under name. Registering the same name twice is an
// error; replacing a live instrument silently would orphan writers.
func (r *Registry) Register(name string, m Metric) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.metrics[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateMetric, name)
	}
	r.metrics[name] = m
	r.order = append(r.order, name)
	return nil
}

// MustRegister is Register for wiring done at startup.
func (r *Registry) MustRegister(name string, m Metric) {
	if err := r.Register(name, m); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (Metric, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.metrics[name]
	return m, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Entries returns the registered entries in registration order. The
// slice is a copy; the metrics it points at are the shared live
// instruments, which readers must treat as read-only.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, Entry{Name: name, Metric: r.metrics[name]})
	}
	return entries
}
