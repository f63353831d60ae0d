package vlist

// Easing remaps normalized animation progress. Input and output are both in
// [0, 1]; an easing must be monotonic with f(0)=0 and f(1)=1.
type Easing func(t float64) float64

// EaseInOutQuint is the default scroll easing: slow start, fast middle,
// slow landing. f(0.5) = 0.5.
func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u*u*u/2
}

// EaseLinear applies no remapping.
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic decelerates toward the target. Useful for short hops where
// the quintic ramp-up feels sluggish.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
