// Package round implements decimal rounding with selectable tie-breaking.
package round

import "math"

// Mode selects how a value exactly halfway between two candidates is rounded.
type Mode uint8

const (
	// HalfUp rounds ties away from zero.
	HalfUp Mode = iota + 1
	// HalfDown rounds ties toward zero.
	HalfDown
	// HalfEven rounds ties to the nearest even digit.
	HalfEven
	// HalfOdd rounds ties to the nearest odd digit.
	HalfOdd
)

func (m Mode) String() string {
	switch m {
	case HalfUp:
		return "half_up"
	case HalfDown:
		return "half_down"
	case HalfEven:
		return "half_even"
	case HalfOdd:
		return "half_odd"
	default:
		return "unknown"
	}
}

// Float rounds v to precision decimal places. A negative precision rounds to the
// left of the decimal point. Unknown modes behave as HalfUp.
func Float(v float64, precision int, mode Mode) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	pow := math.Pow10(precision)
	scaled := v * pow
	if math.IsInf(scaled, 0) || pow == 0 {
		return v
	}

	return Integer(scaled, mode) / pow
}

// Integer rounds v to a whole number.
func Integer(v float64, mode Mode) float64 {
	switch mode {
	case HalfEven:
		return math.RoundToEven(v)
	case HalfDown:
		return halfDown(v)
	case HalfOdd:
		return halfOdd(v)
	default:
		return math.Round(v)
	}
}

func halfDown(v float64) float64 {
	t := math.Trunc(v)
	if math.Abs(v-t) > 0.5 {
		return t + math.Copysign(1, v)
	}
	return t
}

func halfOdd(v float64) float64 {
	t := math.Trunc(v)
	frac := math.Abs(v - t)
	switch {
	case frac > 0.5:
		return t + math.Copysign(1, v)
	case frac < 0.5:
		return t
	}
	// tie
	if math.Mod(t, 2) != 0 {
		return t
	}
	return t + math.Copysign(1, v)
}
