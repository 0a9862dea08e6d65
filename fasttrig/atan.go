package fasttrig

import "github.com/cwbudde/algo-trig/internal/core"

// Abramowitz & Stegun 4.4.49, |error| <= 1e-5 on [0, 1].
const (
	atanC1 = 0.9998660
	atanC3 = -0.3302995
	atanC5 = 0.1801410
	atanC7 = -0.0851330
	atanC9 = 0.0208351
)

// FastAtan approximates atan(x). The result lies in [-π/2, π/2]; no quadrant
// resolution is performed.
func FastAtan[T Float](x T) T {
	a := core.Abs(x)

	invert := a > 1
	if invert {
		a = 1 / a
	}

	a2 := a * a
	r := a * (atanC1 + a2*(atanC3+a2*(atanC5+a2*(atanC7+a2*atanC9))))

	if invert {
		r = halfPi - r
	}

	return core.Sign(x) * r
}

// FastAtan2 approximates atan2(y, x), the angle of the point (x, y) in
// (-π, π]. The quadrant is taken from the signs of both arguments.
//
// FastAtan2(0, 0) returns 0. Signed zeros are not distinguished.
func FastAtan2[T Float](y, x T) T {
	if x == 0 {
		switch {
		case y > 0:
			return halfPi
		case y < 0:
			return -halfPi
		default:
			return 0
		}
	}

	r := FastAtan(y / x)
	if x > 0 {
		return r
	}

	if y < 0 {
		return r - pi
	}

	return r + pi
}
