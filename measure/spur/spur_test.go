package spur

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-trig/fasttrig"
)

func TestAnalyzeExactSine(t *testing.T) {
	res, err := Analyze(math.Sin, Config{})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if math.Abs(res.FundamentalLevel-1) > 1e-9 {
		t.Fatalf("FundamentalLevel = %v, want 1", res.FundamentalLevel)
	}
	if res.THD > 1e-9 {
		t.Fatalf("THD = %v, want < 1e-9 for math.Sin", res.THD)
	}
	if len(res.Harmonics) != defaultMaxHarmonics {
		t.Fatalf("len(Harmonics) = %d, want %d", len(res.Harmonics), defaultMaxHarmonics)
	}
}

func TestAnalyzeFastSin(t *testing.T) {
	res, err := Analyze(fasttrig.FastSin[float64], Config{})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if math.Abs(res.FundamentalLevel-1) > 1e-4 {
		t.Fatalf("FundamentalLevel = %v, want ~1", res.FundamentalLevel)
	}
	if res.THD > 1e-4 {
		t.Fatalf("THD = %v, want < 1e-4", res.THD)
	}
	if res.SFDRdB < 80 {
		t.Fatalf("SFDRdB = %v, want >= 80", res.SFDRdB)
	}
}

func TestAnalyzeFastCos(t *testing.T) {
	res, err := Analyze(fasttrig.FastCos[float64], Config{Size: 1024, Cycles: 5, MaxHarmonics: 4})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if math.Abs(res.FundamentalLevel-1) > 1e-4 {
		t.Fatalf("FundamentalLevel = %v, want ~1", res.FundamentalLevel)
	}
	if len(res.Harmonics) != 4 {
		t.Fatalf("len(Harmonics) = %d, want 4", len(res.Harmonics))
	}
	if res.THD > 1e-4 {
		t.Fatalf("THD = %v, want < 1e-4", res.THD)
	}
}

func TestAnalyzeSquareWave(t *testing.T) {
	square := func(p float64) float64 {
		if p >= 0 {
			return 1
		}
		return -1
	}

	res, err := Analyze(square, Config{})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	// Harmonics[1] is the third harmonic: 1/3 of the fundamental.
	if h3 := res.Harmonics[1]; h3 < 0.3 || h3 > 0.36 {
		t.Fatalf("third harmonic = %v, want ~1/3", h3)
	}
	if res.THD < 0.3 {
		t.Fatalf("THD = %v, want large for a square wave", res.THD)
	}
}

func TestPhaseWrapped(t *testing.T) {
	const n = 64
	for i := 0; i < 4*n; i++ {
		p := phase(i, 3, n)
		if p < -math.Pi || p >= math.Pi {
			t.Fatalf("phase(%d) = %v outside [-π, π)", i, p)
		}
	}
	if p := phase(0, 3, n); p != 0 {
		t.Fatalf("phase(0) = %v, want 0", p)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name string
		osc  Func
		cfg  Config
		want error
	}{
		{name: "nil oscillator", osc: nil, cfg: Config{}, want: ErrNilOscillator},
		{name: "not power of two", osc: math.Sin, cfg: Config{Size: 1000}, want: ErrInvalidSize},
		{name: "too small", osc: math.Sin, cfg: Config{Size: 4, Cycles: 1}, want: ErrInvalidSize},
		{name: "negative cycles", osc: math.Sin, cfg: Config{Cycles: -1}, want: ErrInvalidCycles},
		{name: "cycles at nyquist", osc: math.Sin, cfg: Config{Size: 64, Cycles: 32}, want: ErrInvalidCycles},
		{name: "silent", osc: func(float64) float64 { return 0 }, cfg: Config{}, want: ErrNoFundamental},
		{name: "dc only", osc: func(float64) float64 { return 0.5 }, cfg: Config{}, want: ErrNoFundamental},
		{name: "nan output", osc: func(float64) float64 { return math.NaN() }, cfg: Config{}, want: ErrNoFundamental},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Analyze(tt.osc, tt.cfg); !errors.Is(err, tt.want) {
				t.Fatalf("Analyze error = %v, want %v", err, tt.want)
			}
		})
	}
}
