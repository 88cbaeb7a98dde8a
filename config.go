package arplace

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tuning parameters of a session. They are static for the
// lifetime of a Session.
type Config struct {
	// InitialScaleFactor is the uniform scale applied to newly placed nodes.
	InitialScaleFactor float64 `yaml:"initialScaleFactor"`
	// ScaleSpeed converts pinch distance change in pixels to scale change.
	ScaleSpeed float64 `yaml:"scaleSpeed"`
	// MoveSpeed multiplies the two-finger midpoint delta before it is
	// re-projected onto a surface.
	MoveSpeed float64 `yaml:"moveSpeed"`
	// MaxScale and MinScale bound the uniform scale set by pinching.
	MaxScale float64 `yaml:"maxScale"`
	MinScale float64 `yaml:"minScale"`
	// DoubleTapThreshold is the largest gap between two taps that still
	// counts as a double tap.
	DoubleTapThreshold time.Duration `yaml:"doubleTapThreshold"`
}

// DefaultConfig returns the stock tuning values.
func DefaultConfig() Config {
	return Config{
		InitialScaleFactor: 0.25,
		ScaleSpeed:         0.05,
		MoveSpeed:          1.0,
		MaxScale:           1.0,
		MinScale:           0.05,
		DoubleTapThreshold: 300 * time.Millisecond,
	}
}

// LoadConfig parses YAML into a Config. Fields missing from data keep their
// DefaultConfig values. The result is validated.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the config can drive a session.
func (c Config) Validate() error {
	switch {
	case c.MinScale <= 0:
		return fmt.Errorf("%w: minScale must be positive, got %v", ErrInvalidConfig, c.MinScale)
	case c.MaxScale < c.MinScale:
		return fmt.Errorf("%w: maxScale %v is below minScale %v", ErrInvalidConfig, c.MaxScale, c.MinScale)
	case c.InitialScaleFactor <= 0:
		return fmt.Errorf("%w: initialScaleFactor must be positive, got %v", ErrInvalidConfig, c.InitialScaleFactor)
	case c.DoubleTapThreshold <= 0:
		return fmt.Errorf("%w: doubleTapThreshold must be positive, got %v", ErrInvalidConfig, c.DoubleTapThreshold)
	case c.ScaleSpeed < 0 || c.MoveSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	}
	return nil
}

// MarshalYAML is used by the replay tool to print the effective config with
// durations in their string form.
func (c Config) MarshalYAML() (any, error) {
	return struct {
		InitialScaleFactor float64 `yaml:"initialScaleFactor"`
		ScaleSpeed         float64 `yaml:"scaleSpeed"`
		MoveSpeed          float64 `yaml:"moveSpeed"`
		MaxScale           float64 `yaml:"maxScale"`
		MinScale           float64 `yaml:"minScale"`
		DoubleTapThreshold string  `yaml:"doubleTapThreshold"`
	}{
		c.InitialScaleFactor, c.ScaleSpeed, c.MoveSpeed,
		c.MaxScale, c.MinScale, c.DoubleTapThreshold.String(),
	}, nil
}
