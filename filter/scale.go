package filter

import "math"

// Degenerate reports whether a field has no range to select from.
// Controls over a degenerate field should not accept input.
func Degenerate(lo, hi float64) bool {
	return lo == hi
}

// ToDomain maps a slider tick to a value in [lo, hi].
// The extremes map exactly to lo and hi.
func ToDomain(tick, resolution int, lo, hi float64) float64 {
	if Degenerate(lo, hi) || tick <= 0 || resolution <= 0 {
		return lo
	}
	if tick >= resolution {
		return hi
	}
	return lo + float64(tick)*(hi-lo)/float64(resolution)
}

// ToTick maps a value back to the nearest tick, clamped to [0, resolution]
func ToTick(value float64, resolution int, lo, hi float64) int {
	if Degenerate(lo, hi) || resolution <= 0 || value <= lo {
		return 0
	}
	if value >= hi {
		return resolution
	}

	tick := int(math.Round((value - lo) / (hi - lo) * float64(resolution)))
	if tick > resolution {
		return resolution
	}
	if tick < 0 {
		return 0
	}
	return tick
}
