// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// BlendFactor converts a per-second blend rate into the share of the
// remaining distance covered in one frame. Capped at 1 so a long frame
// lands on the target instead of overshooting.
func BlendFactor(rate, deltaTime float64) float64 {
	if rate <= 0 || deltaTime <= 0 {
		return 0
	}
	return math.Min(1, rate*deltaTime)
}

// RoundedEqual reports whether a and b round to the same integer.
func RoundedEqual(a, b float64) bool {
	return math.Round(a) == math.Round(b)
}
