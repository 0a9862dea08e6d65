package core

// Float is the set of floating-point types the approximations are generic over.
type Float interface {
	~float32 | ~float64
}

// Abs returns |x|. The sign of zero is not preserved.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign[T Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Clamp limits value to the inclusive range [min, max].
func Clamp[T Float](value, min, max T) T {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
