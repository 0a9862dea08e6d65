// Package fasttrig provides fast, reduced-accuracy approximations of the
// trigonometric functions for graphics and signal math hot loops.
//
// All functions are generic over [Float] and are pure: no state, no
// allocation, no error reporting. Each call costs a fixed number of
// multiply-adds plus at most a couple of branches, independent of the input.
//
// # Domain
//
// [FastSin], [FastCos] and [FastTan] are defined on [-2π, 2π]. Callers reduce
// larger angles first, for example with [WrapAngle]. Outside the domain the
// result is deterministic but unspecified.
//
// [FastAsin] and [FastAcos] are defined on [-1, 1]; inputs with |x| > 1 are
// clamped to ±1. [FastAtan] and [FastAtan2] accept any finite input.
//
// # Accuracy Characteristics
//
// Maximum absolute error measured over the domain in float64:
//
//	FastSin    3.6e-6   degree-9 odd polynomial on [-π/2, π/2]
//	FastCos    4.7e-7   degree-10 even polynomial on [-π/2, π/2]
//	FastTan    relative ~1e-5 away from odd multiples of π/2
//	FastAtan   1.2e-5   A&S 4.4.49, reflected for |x| > 1
//	FastAtan2  1.2e-5   quadrant resolved from the signs of y and x
//	FastAsin   2.2e-8   A&S 4.4.46 with a Newton-refined square root
//	FastAcos   2.2e-8   π/2 - FastAsin
//
// float32 instantiations add the rounding error of the argument itself.
//
// FastSin is exactly odd and FastCos exactly even: FastSin(-x) == -FastSin(x)
// and FastCos(-x) == FastCos(x) bit for bit. FastAsin and FastAtan are
// exactly odd as well.
//
// # Block Operations
//
// [SinBlock], [CosBlock] and friends apply the scalar functions element-wise
// to slices, following the dst/src conventions of algo-vecmath.
package fasttrig
