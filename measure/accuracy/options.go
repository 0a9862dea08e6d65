package accuracy

import "math"

const defaultSamples = 4097

// Config controls the sweep.
type Config struct {
	Lo, Hi  float64
	Samples int

	// Exclude, when set, drops sample points for which it returns true.
	Exclude func(x float64) bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig sweeps [-2π, 2π] with 4097 points, so that multiples of
// π/2 fall exactly on the grid up to rounding.
func DefaultConfig() Config {
	return Config{
		Lo:      -2 * math.Pi,
		Hi:      2 * math.Pi,
		Samples: defaultSamples,
	}
}

// WithRange sets the inclusive sweep interval.
func WithRange(lo, hi float64) Option {
	return func(cfg *Config) {
		cfg.Lo = lo
		cfg.Hi = hi
	}
}

// WithSamples sets the number of grid points.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		cfg.Samples = n
	}
}

// WithExclusion drops grid points for which exclude returns true.
func WithExclusion(exclude func(x float64) bool) Option {
	return func(cfg *Config) {
		cfg.Exclude = exclude
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
