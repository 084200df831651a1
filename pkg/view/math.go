// pkg/view/math.go
package view

import "math"

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpDegrees interpolates between two angles along the shortest arc.
func LerpDegrees(from, to, t float64) float64 {
	from = NormalizeDegrees(from)
	to = NormalizeDegrees(to)

	diff := to - from
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}

	return NormalizeDegrees(from + diff*t)
}

// NormalizeDegrees folds an angle into (-180, 180].
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle > 180 {
		angle -= 360
	} else if angle <= -180 {
		angle += 360
	}
	return angle
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
