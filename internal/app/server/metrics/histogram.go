package metrics

import (
	"math"
	"math/rand"
	"sync"
)

// DefaultReservoirSize bounds the memory a histogram spends on raw
// samples while keeping quantile estimates usable.
const DefaultReservoirSize = 1028

type histogram struct {
	mu        sync.Mutex
	reservoir []float64
	size      int
	count     int64
	min       int64
	max       int64
	mean      float64
	sumSqDev  float64
}

// NewHistogram returns a histogram with a uniform sample reservoir of
// the given capacity (DefaultReservoirSize if reservoirSize <= 0).
// Running count/min/max/mean/stddev cover every recorded value; only
// quantiles are estimated from the reservoir.
func NewHistogram(reservoirSize int) Histogram {
	if reservoirSize <= 0 {
		reservoirSize = DefaultReservoirSize
	}
	return &histogram{
		reservoir: make([]float64, 0, reservoirSize),
		size:      reservoirSize,
	}
}

func (h *histogram) Kind() Kind { return KindHistogram }

func (h *histogram) Update(value int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.count++
	if h.count == 1 || value < h.min {
		h.min = value
	}
	if h.count == 1 || value > h.max {
		h.max = value
	}

	// Welford's running mean and sum of squared deviations.
	old := h.mean
	h.mean += (float64(value) - old) / float64(h.count)
	h.sumSqDev += (float64(value) - old) * (float64(value) - h.mean)

	// Vitter's algorithm R: keep each value with probability size/count.
	if len(h.reservoir) < h.size {
		h.reservoir = append(h.reservoir, float64(value))
	} else if idx := rand.Int63n(h.count); idx < int64(h.size) {
		h.reservoir[idx] = float64(value)
	}
}

func (h *histogram) Count() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

func (h *histogram) Min() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.min
}

func (h *histogram) Max() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.max
}

func (h *histogram) Mean() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mean
}

func (h *histogram) StdDev() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count <= 1 {
		return 0
	}
	return math.Sqrt(h.sumSqDev / float64(h.count-1))
}

func (h *histogram) Snapshot() *Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return NewSnapshot(h.reservoir)
}
