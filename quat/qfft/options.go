package qfft

import "github.com/cwbudde/algo-quat/quat"

// Side selects on which side of the signal the exponential kernel
// multiplies. Quaternion multiplication does not commute, so the two sides
// give different transforms.
type Side int

const (
	// Left computes F[k] = Σ exp(-μ 2π nk/N) f[n].
	Left Side = iota
	// Right computes F[k] = Σ f[n] exp(-μ 2π nk/N).
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Config holds the settings of a Transform.
type Config struct {
	Side Side
	// Axis is the pure unit quaternion μ of the kernel exponential.
	Axis quat.Vec3[float64]
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the left-sided transform about the axis i.
func DefaultConfig() Config {
	return Config{Side: Left, Axis: quat.Vec3[float64]{1, 0, 0}}
}

// WithSide sets the side of the kernel.
func WithSide(s Side) Option {
	return func(cfg *Config) {
		if s == Left || s == Right {
			cfg.Side = s
		}
	}
}

// WithAxis sets the transform axis. The axis is normalized; a zero or
// non-finite axis is ignored.
func WithAxis(axis quat.Vector[float64]) Option {
	return func(cfg *Config) {
		q := quat.FromVector(axis)
		if q.IsZero() || q.IsNaN() || q.IsInf() {
			return
		}

		cfg.Axis = q.Norm().Vector()
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
