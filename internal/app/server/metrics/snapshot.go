package metrics

import (
	"math"
	"sort"
)

// Snapshot is an immutable statistical summary of a sample set taken
// at a single point in time. It owns a private sorted copy of the
// samples, so later instrument updates never change it.
type Snapshot struct {
	values []float64
}

// NewSnapshot copies and sorts values.
func NewSnapshot(values []float64) *Snapshot {
	cp := make([]float64, len(values))
	copy(cp, values)
	sort.Float64s(cp)
	return &Snapshot{values: cp}
}

// Quantile estimates the q-th quantile (0 <= q <= 1) by rank
// interpolation over the sorted samples. An out-of-range q is a
// programming error.
func (s *Snapshot) Quantile(q float64) float64 {
	if q < 0 || q > 1 || math.IsNaN(q) {
		panic("metrics: quantile out of [0, 1] range")
	}
	n := len(s.values)
	if n == 0 {
		return 0
	}
	pos := q * float64(n+1)
	if pos < 1 {
		return s.values[0]
	}
	if pos >= float64(n) {
		return s.values[n-1]
	}
	lower := s.values[int(pos)-1]
	upper := s.values[int(pos)]
	return lower + (pos-math.Floor(pos))*(upper-lower)
}

func (s *Snapshot) Median() float64 { return s.Quantile(0.5) }
func (s *Snapshot) P75() float64    { return s.Quantile(0.75) }
func (s *Snapshot) P95() float64    { return s.Quantile(0.95) }
func (s *Snapshot) P98() float64    { return s.Quantile(0.98) }
func (s *Snapshot) P99() float64    { return s.Quantile(0.99) }
func (s *Snapshot) P999() float64   { return s.Quantile(0.999) }

// Size reports the number of samples backing the snapshot.
func (s *Snapshot) Size() int { return len(s.values) }

// Values returns a copy of the ordered samples.
func (s *Snapshot) Values() []float64 {
	cp := make([]float64, len(s.values))
	copy(cp, s.values)
	return cp
}
