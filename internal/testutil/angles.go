package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-trig/measure/accuracy"
)

// Linspace returns n evenly spaced values covering [lo, hi] inclusive,
// the same grid accuracy.Sweep measures on.
func Linspace(lo, hi float64, n int) []float64 {
	return accuracy.Sweep(lo, hi, n)
}

// DeterministicAngles draws n uniform values from [lo, hi) with a fixed seed.
func DeterministicAngles(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// ToFloat32 narrows a float64 slice.
func ToFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}
