package domain

import "math"

// UnityEpsilon absorbs floating-point rounding from cos/sin.
// It must not be widened: a token with a² + b² meaningfully off 1 is rejected.
const UnityEpsilon = 1e-9

// IsUnit reports whether |a² + b² − 1| < UnityEpsilon.
func IsUnit(a, b float64) bool {
	return math.Abs(a*a+b*b-1.0) < UnityEpsilon
}
