package fasttrig

// SinBlock computes dst[i] = FastSin(src[i]).
// Slices must have equal length. Panics if lengths differ.
func SinBlock[T Float](dst, src []T) {
	mapBlock(dst, src, FastSin[T])
}

// CosBlock computes dst[i] = FastCos(src[i]).
// Slices must have equal length. Panics if lengths differ.
func CosBlock[T Float](dst, src []T) {
	mapBlock(dst, src, FastCos[T])
}

// TanBlock computes dst[i] = FastTan(src[i]).
// Slices must have equal length. Panics if lengths differ.
func TanBlock[T Float](dst, src []T) {
	mapBlock(dst, src, FastTan[T])
}

// AsinBlock computes dst[i] = FastAsin(src[i]).
// Slices must have equal length. Panics if lengths differ.
func AsinBlock[T Float](dst, src []T) {
	mapBlock(dst, src, FastAsin[T])
}

// AcosBlock computes dst[i] = FastAcos(src[i]).
// Slices must have equal length. Panics if lengths differ.
func AcosBlock[T Float](dst, src []T) {
	mapBlock(dst, src, FastAcos[T])
}

// AtanBlock computes dst[i] = FastAtan(src[i]).
// Slices must have equal length. Panics if lengths differ.
func AtanBlock[T Float](dst, src []T) {
	mapBlock(dst, src, FastAtan[T])
}

// Atan2Block computes dst[i] = FastAtan2(y[i], x[i]).
// Slices must have equal length. Panics if lengths differ.
func Atan2Block[T Float](dst, y, x []T) {
	if len(y) != len(dst) || len(x) != len(dst) {
		panic("fasttrig: slice length mismatch")
	}

	for i := range dst {
		dst[i] = FastAtan2(y[i], x[i])
	}
}

// SinCosBlock computes sin[i], cos[i] = FastSinCos(src[i]).
// Slices must have equal length. Panics if lengths differ.
// src may alias either output.
func SinCosBlock[T Float](sin, cos, src []T) {
	if len(sin) != len(src) || len(cos) != len(src) {
		panic("fasttrig: slice length mismatch")
	}

	for i, x := range src {
		sin[i], cos[i] = FastSinCos(x)
	}
}

// mapBlock applies f element-wise; dst may alias src.
func mapBlock[T Float](dst, src []T, f func(T) T) {
	if len(dst) != len(src) {
		panic("fasttrig: slice length mismatch")
	}

	for i, x := range src {
		dst[i] = f(x)
	}
}
