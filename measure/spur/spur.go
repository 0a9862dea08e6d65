// Package spur measures the spectral purity of a sinusoid synthesised with a
// trigonometric approximation.
//
// The oscillator is sampled over an integer number of periods, so the tone
// is coherent with the FFT frame and no window is needed: every bin other
// than the fundamental holds approximation error only. Polynomial error on a
// folded, periodic argument shows up as odd and even harmonics; their total
// relative to the fundamental is the THD.
package spur

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultSize         = 4096
	defaultCycles       = 7
	defaultMaxHarmonics = 9
	minSize             = 8

	// Below this level the fundamental bin holds rounding noise only.
	minFundamental = 1e-9
)

// Errors returned by Analyze.
var (
	ErrNilOscillator = errors.New("spur: oscillator must not be nil")
	ErrInvalidSize   = errors.New("spur: size must be a power of two >= 8")
	ErrInvalidCycles = errors.New("spur: cycles out of range")
	ErrNoFundamental = errors.New("spur: no energy at the fundamental")
)

// Func maps a phase in [-π, π) to a sample.
type Func func(phase float64) float64

// Config holds the analysis parameters. Zero fields take defaults.
type Config struct {
	Size         int
	Cycles       int
	MaxHarmonics int
}

// Result holds the spectral measurement.
type Result struct {
	// FundamentalLevel is the magnitude of the fundamental bin relative to a
	// perfect unit sinusoid (1.0 means unit amplitude).
	FundamentalLevel float64

	// Harmonics[k] is the level of harmonic k+2 relative to the fundamental.
	Harmonics []float64

	THD    float64
	THDdB  float64
	SFDRdB float64
}

// Analyze synthesises cfg.Cycles periods of osc over cfg.Size samples and
// reports the harmonic content of the result. An oscillator with no energy
// at the fundamental, such as a silent or constant one, yields
// ErrNoFundamental.
func Analyze(osc Func, cfg Config) (Result, error) {
	if osc == nil {
		return Result{}, ErrNilOscillator
	}

	cfg = normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}

	n := cfg.Size

	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(osc(phase(i, cfg.Cycles, n)), 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("spur: fft plan of size %d: %w", n, err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spur: forward fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range re {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	// A unit sinusoid puts n/2 into its bin.
	vecmath.ScaleBlockInPlace(mag, 2/float64(n))

	if fund := mag[cfg.Cycles]; !(fund >= minFundamental) {
		return Result{}, fmt.Errorf("%w: level %g at bin %d", ErrNoFundamental, fund, cfg.Cycles)
	}

	return measure(mag, cfg), nil
}

// phase returns the wrapped phase of sample i of a tone with the given
// number of cycles per n samples. Integer arithmetic keeps it exact.
func phase(i, cycles, n int) float64 {
	m := (i * cycles) % n

	p := 2 * math.Pi * float64(m) / float64(n)
	if p >= math.Pi {
		p -= 2 * math.Pi
	}

	return p
}

// measure expects a fundamental level of at least minFundamental.
func measure(mag []float64, cfg Config) Result {
	fund := mag[cfg.Cycles]

	harmonics := make([]float64, 0, cfg.MaxHarmonics)
	sumSq := 0.0

	for k := 2; k < cfg.MaxHarmonics+2; k++ {
		bin := k * cfg.Cycles
		if bin >= len(mag) {
			break
		}

		h := mag[bin] / fund
		harmonics = append(harmonics, h)
		sumSq += h * h
	}

	spur := 0.0
	for i := 1; i < len(mag); i++ {
		if i != cfg.Cycles && mag[i] > spur {
			spur = mag[i]
		}
	}

	thd := math.Sqrt(sumSq)

	return Result{
		FundamentalLevel: fund,
		Harmonics:        harmonics,
		THD:              thd,
		THDdB:            ratioToDB(thd),
		SFDRdB:           -ratioToDB(spur / fund),
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Size == 0 {
		cfg.Size = defaultSize
	}

	if cfg.Cycles == 0 {
		cfg.Cycles = defaultCycles
	}

	if cfg.MaxHarmonics <= 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	return cfg
}

func validateConfig(cfg Config) error {
	if cfg.Size < minSize || cfg.Size&(cfg.Size-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, cfg.Size)
	}

	if cfg.Cycles < 1 || cfg.Cycles >= cfg.Size/2 {
		return fmt.Errorf("%w: %d not in [1, %d)", ErrInvalidCycles, cfg.Cycles, cfg.Size/2)
	}

	return nil
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}
