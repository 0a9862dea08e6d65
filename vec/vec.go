// Package vec provides small fixed-size vectors with componentwise fast
// trigonometry, mirroring the vector overloads of shader math libraries.
//
// Every trig method applies the matching fasttrig function to each component
// independently, so the domain and accuracy notes of package fasttrig apply
// per component.
package vec

import "github.com/cwbudde/algo-trig/fasttrig"

// Vec2 is a 2-component vector.
type Vec2[T fasttrig.Float] [2]T

// Vec3 is a 3-component vector.
type Vec3[T fasttrig.Float] [3]T

// Vec4 is a 4-component vector.
type Vec4[T fasttrig.Float] [4]T

// V2 returns the vector (x, y).
func V2[T fasttrig.Float](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// V3 returns the vector (x, y, z).
func V3[T fasttrig.Float](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// V4 returns the vector (x, y, z, w).
func V4[T fasttrig.Float](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// Map returns f applied to each component.
func (v Vec2[T]) Map(f func(T) T) Vec2[T] {
	for i := range v {
		v[i] = f(v[i])
	}
	return v
}

// Zip returns f applied to each pair of components of v and o.
func (v Vec2[T]) Zip(o Vec2[T], f func(T, T) T) Vec2[T] {
	for i := range v {
		v[i] = f(v[i], o[i])
	}
	return v
}

// Map returns f applied to each component.
func (v Vec3[T]) Map(f func(T) T) Vec3[T] {
	for i := range v {
		v[i] = f(v[i])
	}
	return v
}

// Zip returns f applied to each pair of components of v and o.
func (v Vec3[T]) Zip(o Vec3[T], f func(T, T) T) Vec3[T] {
	for i := range v {
		v[i] = f(v[i], o[i])
	}
	return v
}

// Map returns f applied to each component.
func (v Vec4[T]) Map(f func(T) T) Vec4[T] {
	for i := range v {
		v[i] = f(v[i])
	}
	return v
}

// Zip returns f applied to each pair of components of v and o.
func (v Vec4[T]) Zip(o Vec4[T], f func(T, T) T) Vec4[T] {
	for i := range v {
		v[i] = f(v[i], o[i])
	}
	return v
}
