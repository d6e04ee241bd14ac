package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Normalize2 scales (x, y) to unit length if it is longer than one.
func Normalize2(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	switch {
	case math.IsNaN(l) || math.IsInf(l, 0):
		return 0, 0
	case l <= 1:
		return x, y
	}
	return x / l, y / l
}

// Facing returns the forward unit vector for a rotation in radians.
func Facing(rotation float64) (float64, float64) {
	return math.Cos(rotation), math.Sin(rotation)
}
