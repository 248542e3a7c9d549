package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotQuantiles(t *testing.T) {
	snap := NewSnapshot([]float64{5, 1, 2, 3, 4})

	tests := []struct {
		name     string
		quantile float64
		expected float64
	}{
		{name: "minimum", quantile: 0, expected: 1},
		{name: "median", quantile: 0.5, expected: 3},
		{name: "p75", quantile: 0.75, expected: 4.5},
		{name: "maximum", quantile: 1, expected: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, snap.Quantile(tc.quantile), 1e-9)
		})
	}
}

func TestSnapshotSortsInput(t *testing.T) {
	snap := NewSnapshot([]float64{9, 1, 5})
	assert.Equal(t, []float64{1, 5, 9}, snap.Values())
}

func TestSnapshotEmpty(t *testing.T) {
	snap := NewSnapshot(nil)

	assert.Equal(t, 0, snap.Size())
	assert.Zero(t, snap.Median())
	assert.Zero(t, snap.P999())
	assert.Empty(t, snap.Values())
}

func TestSnapshotImmutable(t *testing.T) {
	input := []float64{3, 1, 2}
	snap := NewSnapshot(input)

	// Neither mutating the input nor the returned values may affect
	// the snapshot.
	input[0] = 100
	values := snap.Values()
	values[0] = -1

	require.Equal(t, []float64{1, 2, 3}, snap.Values())
}

func TestSnapshotQuantileOutOfRange(t *testing.T) {
	snap := NewSnapshot([]float64{1})
	assert.Panics(t, func() { snap.Quantile(1.5) })
	assert.Panics(t, func() { snap.Quantile(-0.1) })
}

func TestSnapshotNamedQuantiles(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}
	snap := NewSnapshot(values)

	assert.InDelta(t, 50.5, snap.Median(), 1e-9)
	assert.InDelta(t, 75.75, snap.P75(), 1e-9)
	assert.InDelta(t, 95.95, snap.P95(), 1e-9)
	assert.InDelta(t, 98.98, snap.P98(), 1e-9)
	assert.InDelta(t, 99.99, snap.P99(), 1e-9)
	assert.InDelta(t, 100, snap.P999(), 1e-9)
}
