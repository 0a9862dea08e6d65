package accuracy

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Func is a scalar function under test or a reference.
type Func func(x float64) float64

// Result summarises the error approx(x) - exact(x) over the sweep.
type Result struct {
	MaxAbsError float64
	RMSError    float64
	MeanError   float64

	// WorstInput is the first grid point at which |error| == MaxAbsError.
	WorstInput float64

	// Samples is the number of grid points that entered the statistics.
	Samples int
}

// Narrow adapts a float32 approximation to Func. The argument is rounded to
// float32 before evaluation, so the measured error includes that rounding.
func Narrow(f func(float32) float32) Func {
	return func(x float64) float64 {
		return float64(f(float32(x)))
	}
}

// Sweep returns n evenly spaced points covering [lo, hi] inclusive.
func Sweep(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi

	return out
}

// Compare measures approx against exact over the configured sweep.
//
// Grid points where exact is not finite are skipped. A non-finite approx
// value at any remaining point is reported as ErrNonFinite.
func Compare(approx, exact Func, opts ...Option) (Result, error) {
	if approx == nil || exact == nil {
		return Result{}, ErrNilFunc
	}

	xs, err := grid(ApplyOptions(opts...))
	if err != nil {
		return Result{}, err
	}

	kept := xs[:0]
	got := make([]float64, 0, len(xs))
	want := make([]float64, 0, len(xs))

	for _, x := range xs {
		w := exact(x)
		if !isFinite(w) {
			continue
		}

		g := approx(x)
		if !isFinite(g) {
			return Result{}, fmt.Errorf("%w: %v at x=%v", ErrNonFinite, g, x)
		}

		kept = append(kept, x)
		got = append(got, g)
		want = append(want, w)
	}

	if len(kept) == 0 {
		return Result{}, fmt.Errorf("%w: no point with a finite reference", ErrTooFewPoints)
	}

	return summarize(kept, got, want), nil
}

// Pythagorean measures the residual sin(x)² + cos(x)² - 1 over the sweep.
func Pythagorean(sin, cos Func, opts ...Option) (Result, error) {
	if sin == nil || cos == nil {
		return Result{}, ErrNilFunc
	}

	xs, err := grid(ApplyOptions(opts...))
	if err != nil {
		return Result{}, err
	}

	s := make([]float64, len(xs))
	c := make([]float64, len(xs))
	ones := make([]float64, len(xs))

	for i, x := range xs {
		s[i], c[i] = sin(x), cos(x)
		if !isFinite(s[i]) || !isFinite(c[i]) {
			return Result{}, fmt.Errorf("%w: (%v, %v) at x=%v", ErrNonFinite, s[i], c[i], x)
		}
		ones[i] = 1
	}

	sum := make([]float64, len(xs))
	vecmath.MulBlock(sum, s, s)
	vecmath.MulAddBlock(sum, c, c, sum)

	return summarize(xs, sum, ones), nil
}

// grid validates cfg and returns its sample points with exclusions applied.
func grid(cfg Config) ([]float64, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	xs := Sweep(cfg.Lo, cfg.Hi, cfg.Samples)
	if cfg.Exclude == nil {
		return xs, nil
	}

	kept := xs[:0]
	for _, x := range xs {
		if !cfg.Exclude(x) {
			kept = append(kept, x)
		}
	}

	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: all %d points excluded", ErrTooFewPoints, cfg.Samples)
	}

	return kept, nil
}

func summarize(xs, got, want []float64) Result {
	n := len(got)

	diff := make([]float64, n)
	vecmath.ScaleBlock(diff, want, -1)
	vecmath.AddBlockInPlace(diff, got)

	maxAbs := vecmath.MaxAbs(diff)

	worst := xs[0]
	for i, d := range diff {
		if math.Abs(d) == maxAbs {
			worst = xs[i]
			break
		}
	}

	return Result{
		MaxAbsError: maxAbs,
		RMSError:    math.Sqrt(vecmath.DotProduct(diff, diff) / float64(n)),
		MeanError:   vecmath.Sum(diff) / float64(n),
		WorstInput:  worst,
		Samples:     n,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
