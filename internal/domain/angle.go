package domain

import "math"

// NormalizeDegrees reduces any angle in degrees to the range [0, 360).
// math.Mod keeps the sign of the dividend, so the first remainder is shifted
// by a full turn and reduced again.
func NormalizeDegrees(x float64) float64 {
	return math.Mod(math.Mod(x, 360)+360, 360)
}
