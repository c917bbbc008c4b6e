package vmath

import "math"

// ShortestAngleDelta returns the signed rotation in (-π, π] that takes
// heading a to heading b along the shorter arc
func ShortestAngleDelta(a, b float64) float64 {
	delta := math.Mod(b-a, 2*math.Pi)
	if delta > math.Pi {
		delta -= 2 * math.Pi
	} else if delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}

// Sign returns 1 for x >= 0 and -1 otherwise
func Sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// NormalizeAngle wraps an angle into (-π, π]
func NormalizeAngle(a float64) float64 {
	return ShortestAngleDelta(0, a)
}
