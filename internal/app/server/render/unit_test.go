package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationUnit(t *testing.T) {
	tests := []struct {
		name     string
		expected DurationUnit
	}{
		{name: "nanoseconds", expected: Nanoseconds},
		{name: "microseconds", expected: Microseconds},
		{name: "milliseconds", expected: Milliseconds},
		{name: "seconds", expected: Seconds},
		{name: "minutes", expected: Minutes},
		{name: "hours", expected: Hours},
		{name: "days", expected: Days},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			unit, err := ParseDurationUnit(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, unit)
			assert.Equal(t, tc.name, unit.String())
		})
	}
}

func TestParseDurationUnitUnknown(t *testing.T) {
	_, err := ParseDurationUnit("fortnights")
	assert.Error(t, err)

	// Spelling is exact: no case folding, no abbreviations.
	_, err = ParseDurationUnit("Milliseconds")
	assert.Error(t, err)
	_, err = ParseDurationUnit("ms")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		unit     DurationUnit
		ns       float64
		expected float64
	}{
		{name: "ns to ms", unit: Milliseconds, ns: 1_000_000, expected: 1.0},
		{name: "ns to ms fractional", unit: Milliseconds, ns: 1_500_000, expected: 1.5},
		{name: "ns to seconds", unit: Seconds, ns: 2_000_000_000, expected: 2.0},
		{name: "ns identity", unit: Nanoseconds, ns: 123, expected: 123},
		{name: "ns to days", unit: Days, ns: 86_400_000_000_000, expected: 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, tc.unit.Convert(tc.ns), 1e-12)
		})
	}
}

func TestConvertAllPreservesOrder(t *testing.T) {
	converted := Milliseconds.ConvertAll([]float64{3_000_000, 1_000_000, 2_000_000})
	assert.Equal(t, []float64{3, 1, 2}, converted)
}

func TestConvertAllEmpty(t *testing.T) {
	assert.Empty(t, Milliseconds.ConvertAll(nil))
}
