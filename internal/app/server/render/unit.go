package render

import (
	"fmt"
	"time"
)

// DurationUnit is the output unit for timer durations, expressed as
// the number of nanoseconds in one unit. Raw samples are recorded in
// nanoseconds; rendering divides by the unit so only converted values
// reach the wire.
type DurationUnit time.Duration

const (
	Nanoseconds  DurationUnit = DurationUnit(time.Nanosecond)
	Microseconds DurationUnit = DurationUnit(time.Microsecond)
	Milliseconds DurationUnit = DurationUnit(time.Millisecond)
	Seconds      DurationUnit = DurationUnit(time.Second)
	Minutes      DurationUnit = DurationUnit(time.Minute)
	Hours        DurationUnit = DurationUnit(time.Hour)
	Days         DurationUnit = DurationUnit(24 * time.Hour)
)

// ParseDurationUnit maps a lowercase unit name to its DurationUnit.
func ParseDurationUnit(name string) (DurationUnit, error) {
	switch name {
	case "nanoseconds":
		return Nanoseconds, nil
	case "microseconds":
		return Microseconds, nil
	case "milliseconds":
		return Milliseconds, nil
	case "seconds":
		return Seconds, nil
	case "minutes":
		return Minutes, nil
	case "hours":
		return Hours, nil
	case "days":
		return Days, nil
	default:
		return 0, fmt.Errorf("unknown duration unit %q", name)
	}
}

func (u DurationUnit) String() string {
	switch u {
	case Nanoseconds:
		return "nanoseconds"
	case Microseconds:
		return "microseconds"
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	default:
		return fmt.Sprintf("DurationUnit(%d)", int64(u))
	}
}

// Convert expresses a nanosecond value in the unit.
func (u DurationUnit) Convert(ns float64) float64 {
	return ns / float64(u)
}

// ConvertAll converts every element independently, preserving order.
func (u DurationUnit) ConvertAll(ns []float64) []float64 {
	out := make([]float64, len(ns))
	for i, v := range ns {
		out[i] = u.Convert(v)
	}
	return out
}
