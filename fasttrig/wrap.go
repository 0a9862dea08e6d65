package fasttrig

import "math"

// WrapAngle reduces a finite angle into [-π, π), the interval on which the
// fast functions are most accurate. Angles already in range are returned
// unchanged. NaN and ±Inf yield NaN.
//
// Unlike the approximations, WrapAngle works on any magnitude, at the cost
// of a floor in float64.
func WrapAngle[T Float](angle T) T {
	if angle >= -pi && angle < pi {
		return angle
	}

	a := float64(angle)
	w := a - 2*math.Pi*math.Floor((a+math.Pi)/(2*math.Pi))

	// Rounding in the floor quotient can land one period off.
	if w >= math.Pi {
		w -= 2 * math.Pi
	} else if w < -math.Pi {
		w += 2 * math.Pi
	}

	return T(w)
}
