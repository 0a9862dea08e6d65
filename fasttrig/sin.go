package fasttrig

import "github.com/cwbudde/algo-trig/internal/core"

// Float is satisfied by float32, float64 and types derived from them.
type Float interface {
	core.Float
}

const (
	pi     = 3.14159265358979323846264338327950288419716939937510582097494459
	twoPi  = 2 * pi
	halfPi = pi / 2
)

// Taylor coefficients. On [-π/2, π/2] the truncation error stays below
// 3.6e-6 for sine and 4.7e-7 for cosine.
const (
	sinC3 = -1.0 / 6
	sinC5 = 1.0 / 120
	sinC7 = -1.0 / 5040
	sinC9 = 1.0 / 362880

	cosC2  = -1.0 / 2
	cosC4  = 1.0 / 24
	cosC6  = -1.0 / 720
	cosC8  = 1.0 / 40320
	cosC10 = -1.0 / 3628800
)

// FastSin approximates sin(angle) for angle in [-2π, 2π].
func FastSin[T Float](angle T) T {
	return sinReduced(reduce(angle))
}

// FastCos approximates cos(angle) for angle in [-2π, 2π].
func FastCos[T Float](angle T) T {
	return cosReduced(reduce(angle))
}

// FastSinCos returns FastSin(angle) and FastCos(angle), sharing the range
// reduction.
func FastSinCos[T Float](angle T) (sin, cos T) {
	x := reduce(angle)
	return sinReduced(x), cosReduced(x)
}

// FastTan approximates tan(angle) for angle in [-2π, 2π].
//
// Near odd multiples of π/2 the result diverges like the true tangent; there
// is no guard against the division by a vanishing cosine.
func FastTan[T Float](angle T) T {
	s, c := FastSinCos(angle)
	return s / c
}

// reduce maps [-3π, 3π] onto [-π, π] with a single conditional shift.
// Negation commutes with it exactly, which keeps sine odd and cosine even.
func reduce[T Float](angle T) T {
	if angle > pi {
		return angle - twoPi
	}

	if angle < -pi {
		return angle + twoPi
	}

	return angle
}

// sinReduced expects x in [-π, π].
func sinReduced[T Float](x T) T {
	if x > halfPi {
		x = pi - x
	} else if x < -halfPi {
		x = -pi - x
	}

	x2 := x * x

	return x * (1 + x2*(sinC3+x2*(sinC5+x2*(sinC7+x2*sinC9))))
}

// cosReduced expects x in [-π, π].
func cosReduced[T Float](x T) T {
	x = core.Abs(x)
	if x > halfPi {
		return -cosPoly(pi - x)
	}

	return cosPoly(x)
}

func cosPoly[T Float](x T) T {
	x2 := x * x
	return 1 + x2*(cosC2+x2*(cosC4+x2*(cosC6+x2*(cosC8+x2*cosC10))))
}
