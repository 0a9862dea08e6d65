package fasttrig

import (
	"github.com/cwbudde/algo-trig/internal/core"
	"github.com/meko-christian/algo-approx"
)

// Abramowitz & Stegun 4.4.46:
// asin(x) = π/2 - sqrt(1-x)·(c0 + c1·x + ... + c7·x^7), |error| <= 2e-8 on [0, 1].
const (
	asinC0 = 1.5707963050
	asinC1 = -0.2145988016
	asinC2 = 0.0889789874
	asinC3 = -0.0501743046
	asinC4 = 0.0308918810
	asinC5 = -0.0170881256
	asinC6 = 0.0066700901
	asinC7 = -0.0012624911
)

// FastAsin approximates asin(x) for x in [-1, 1]. Inputs outside the domain
// are clamped, so FastAsin(±2) == FastAsin(±1) == ±π/2.
func FastAsin[T Float](x T) T {
	a := core.Clamp(core.Abs(x), 0, 1)

	p := asinC0 + a*(asinC1+a*(asinC2+a*(asinC3+a*(asinC4+a*(asinC5+a*(asinC6+a*asinC7))))))
	r := halfPi - sqrt(1-a)*p

	return core.Sign(x) * r
}

// FastAcos approximates acos(x) for x in [-1, 1] as π/2 - FastAsin(x).
// The result lies in [0, π].
func FastAcos[T Float](x T) T {
	return halfPi - FastAsin(x)
}

// sqrt refines the algo-approx estimate with one Newton step. Its default
// precision is good to about 1.5e-6 relative; the step squares that, which
// puts the result at full precision for both float32 and float64.
func sqrt[T Float](v T) T {
	if v <= 0 {
		return 0
	}

	s := approx.FastSqrt(v)
	if s <= 0 {
		return 0
	}

	return 0.5 * (s + v/s)
}
