package vec

import "github.com/cwbudde/algo-trig/fasttrig"

// Sin returns the componentwise sine of v. See fasttrig.FastSin.
func (v Vec2[T]) Sin() Vec2[T] { return v.Map(fasttrig.FastSin[T]) }

// Cos returns the componentwise cosine of v. See fasttrig.FastCos.
func (v Vec2[T]) Cos() Vec2[T] { return v.Map(fasttrig.FastCos[T]) }

// Tan returns the componentwise tangent of v. See fasttrig.FastTan.
func (v Vec2[T]) Tan() Vec2[T] { return v.Map(fasttrig.FastTan[T]) }

// Asin returns the componentwise arcsine of v. See fasttrig.FastAsin.
func (v Vec2[T]) Asin() Vec2[T] { return v.Map(fasttrig.FastAsin[T]) }

// Acos returns the componentwise arccosine of v. See fasttrig.FastAcos.
func (v Vec2[T]) Acos() Vec2[T] { return v.Map(fasttrig.FastAcos[T]) }

// Atan returns the componentwise arctangent of v. See fasttrig.FastAtan.
func (v Vec2[T]) Atan() Vec2[T] { return v.Map(fasttrig.FastAtan[T]) }

// Atan2 returns the componentwise angle of the points (x[i], v[i]), with v
// holding the y components. See fasttrig.FastAtan2.
func (v Vec2[T]) Atan2(x Vec2[T]) Vec2[T] { return v.Zip(x, fasttrig.FastAtan2[T]) }

// SinCos returns the componentwise sine and cosine of v.
func (v Vec2[T]) SinCos() (sin, cos Vec2[T]) {
	for i, x := range v {
		sin[i], cos[i] = fasttrig.FastSinCos(x)
	}
	return sin, cos
}

// Sin returns the componentwise sine of v. See fasttrig.FastSin.
func (v Vec3[T]) Sin() Vec3[T] { return v.Map(fasttrig.FastSin[T]) }

// Cos returns the componentwise cosine of v. See fasttrig.FastCos.
func (v Vec3[T]) Cos() Vec3[T] { return v.Map(fasttrig.FastCos[T]) }

// Tan returns the componentwise tangent of v. See fasttrig.FastTan.
func (v Vec3[T]) Tan() Vec3[T] { return v.Map(fasttrig.FastTan[T]) }

// Asin returns the componentwise arcsine of v. See fasttrig.FastAsin.
func (v Vec3[T]) Asin() Vec3[T] { return v.Map(fasttrig.FastAsin[T]) }

// Acos returns the componentwise arccosine of v. See fasttrig.FastAcos.
func (v Vec3[T]) Acos() Vec3[T] { return v.Map(fasttrig.FastAcos[T]) }

// Atan returns the componentwise arctangent of v. See fasttrig.FastAtan.
func (v Vec3[T]) Atan() Vec3[T] { return v.Map(fasttrig.FastAtan[T]) }

// Atan2 returns the componentwise angle of the points (x[i], v[i]), with v
// holding the y components. See fasttrig.FastAtan2.
func (v Vec3[T]) Atan2(x Vec3[T]) Vec3[T] { return v.Zip(x, fasttrig.FastAtan2[T]) }

// SinCos returns the componentwise sine and cosine of v.
func (v Vec3[T]) SinCos() (sin, cos Vec3[T]) {
	for i, x := range v {
		sin[i], cos[i] = fasttrig.FastSinCos(x)
	}
	return sin, cos
}

// Sin returns the componentwise sine of v. See fasttrig.FastSin.
func (v Vec4[T]) Sin() Vec4[T] { return v.Map(fasttrig.FastSin[T]) }

// Cos returns the componentwise cosine of v. See fasttrig.FastCos.
func (v Vec4[T]) Cos() Vec4[T] { return v.Map(fasttrig.FastCos[T]) }

// Tan returns the componentwise tangent of v. See fasttrig.FastTan.
func (v Vec4[T]) Tan() Vec4[T] { return v.Map(fasttrig.FastTan[T]) }

// Asin returns the componentwise arcsine of v. See fasttrig.FastAsin.
func (v Vec4[T]) Asin() Vec4[T] { return v.Map(fasttrig.FastAsin[T]) }

// Acos returns the componentwise arccosine of v. See fasttrig.FastAcos.
func (v Vec4[T]) Acos() Vec4[T] { return v.Map(fasttrig.FastAcos[T]) }

// Atan returns the componentwise arctangent of v. See fasttrig.FastAtan.
func (v Vec4[T]) Atan() Vec4[T] { return v.Map(fasttrig.FastAtan[T]) }

// Atan2 returns the componentwise angle of the points (x[i], v[i]), with v
// holding the y components. See fasttrig.FastAtan2.
func (v Vec4[T]) Atan2(x Vec4[T]) Vec4[T] { return v.Zip(x, fasttrig.FastAtan2[T]) }

// SinCos returns the componentwise sine and cosine of v.
func (v Vec4[T]) SinCos() (sin, cos Vec4[T]) {
	for i, x := range v {
		sin[i], cos[i] = fasttrig.FastSinCos(x)
	}
	return sin, cos
}
