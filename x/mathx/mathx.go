package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Max(lo, Min(v, hi))
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// WrapZero returns v when v < n and 0 otherwise.
// It is a reset, not a modulo: an out-of-range index restarts the cycle.
// n == 0 always yields 0.
func WrapZero[T constraints.Unsigned](v, n T) T {
	if v >= n {
		return 0
	}
	return v
}

// Rescale maps v in [0, from] onto [0, to] with integer rounding down.
// Inputs above from are clamped; from == 0 yields 0.
func Rescale[T constraints.Unsigned](v, from, to T) uint64 {
	if from == 0 {
		return 0
	}
	v = Min(v, from)
	return uint64(v) * uint64(to) / uint64(from)
}
