package accuracy

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Compare and Pythagorean.
var (
	// ErrNilFunc is returned when a function under test or the reference is nil.
	ErrNilFunc = errors.New("accuracy: function must not be nil")

	// ErrInvalidRange is returned for a non-finite or empty sweep interval.
	ErrInvalidRange = errors.New("accuracy: invalid sweep range")

	// ErrTooFewPoints is returned when fewer than two samples are requested or
	// when exclusions and non-finite references leave no point to measure.
	ErrTooFewPoints = errors.New("accuracy: too few sample points")

	// ErrNonFinite is returned when the approximation yields NaN or ±Inf at a
	// point where the reference is finite.
	ErrNonFinite = errors.New("accuracy: non-finite approximation value")
)

func validateConfig(cfg Config) error {
	if math.IsNaN(cfg.Lo) || math.IsNaN(cfg.Hi) || math.IsInf(cfg.Lo, 0) || math.IsInf(cfg.Hi, 0) {
		return fmt.Errorf("%w: [%v, %v] must be finite", ErrInvalidRange, cfg.Lo, cfg.Hi)
	}
	if cfg.Lo >= cfg.Hi {
		return fmt.Errorf("%w: lo %v must be < hi %v", ErrInvalidRange, cfg.Lo, cfg.Hi)
	}
	if cfg.Samples < 2 {
		return fmt.Errorf("%w: samples must be >= 2: %d", ErrTooFewPoints, cfg.Samples)
	}
	return nil
}
