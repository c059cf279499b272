package host

import "math"

// Powf is the platform pow for float32 operands.
func Powf(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// SafePowf is Powf with the IEEE special cases forced regardless of the
// underlying math library: pow(1, y) = 1, pow(x, ±0) = 1, pow(-1, ±Inf) = 1.
func SafePowf(x, y float32) float32 {
	switch {
	case x == 1:
		return 1
	case y == 0:
		return 1
	case x == -1 && math.IsInf(float64(y), 0):
		return 1
	}
	return Powf(x, y)
}
