package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNear fails t if |got - want| exceeds eps.
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); !(diff <= eps) {
		t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", name, got, want, diff, eps)
	}
}

// RequireFuncNear evaluates got and want at every x and fails t on the first
// point where they differ by more than eps.
func RequireFuncNear(t *testing.T, name string, xs []float64, got, want func(float64) float64, eps float64) {
	t.Helper()
	for _, x := range xs {
		g, w := got(x), want(x)
		if diff := math.Abs(g - w); !(diff <= eps) {
			t.Fatalf("%s(%v): got %v, want %v (diff %v > eps %v)", name, x, g, w, diff, eps)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
