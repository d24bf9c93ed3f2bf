package vmath

// Scalar helpers shared by the chain blending and pose math.
// All angles are radians, all factors are plain float64.

// Lerp interpolates linearly from a to b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the inclusive range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// NearlyEqual reports whether a and b differ by at most eps
func NearlyEqual(a, b, eps float64) bool {
	d := a - b
	return d >= -eps && d <= eps
}
