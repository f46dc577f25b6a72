package ui

// Lerp linearly interpolates between min and max.
// t=0 returns min, t=1 returns max.
func Lerp(min, max, t float64) float64 {
	return min + (max-min)*t
}

// Clamp limits x to the range [min, max].
func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// RemapClamp linearly remaps x from [from0, from1] to [to0, to1],
// clamping x to the source range first. Values outside the source range
// map to the corresponding destination extreme rather than extrapolating.
func RemapClamp(x, from0, from1, to0, to1 float64) float64 {
	if from0 == from1 {
		return (to0 + to1) / 2
	}
	x = Clamp(x, from0, from1)
	t := (x - from0) / (from1 - from0)
	return Lerp(to0, to1, t)
}
