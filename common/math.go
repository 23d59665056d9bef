package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// SmoothFactor converts a per-second approach speed into a lerp factor for
// this tick, clamped so a dt spike never overshoots the target.
func SmoothFactor(speed, dt float64) float64 {
	f := speed * dt
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// WrapDegrees normalizes an angle to (-180, 180].
func WrapDegrees(deg float64) float64 {
	d := math.Mod(deg+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}
