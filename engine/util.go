package engine

import "golang.org/x/exp/constraints"

// Min returns the smaller of x or y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp restricts f to the inclusive range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
