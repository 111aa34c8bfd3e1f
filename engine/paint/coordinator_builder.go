package paint

import (
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
)

// CoordinatorBuilderOption is a functional option for configuring a Coordinator during construction.
type CoordinatorBuilderOption func(*coordinator)

// WithMarkColor sets the color every hit blends toward.
//
// Parameters:
//   - col: the mark color
//
// Returns:
//   - CoordinatorBuilderOption: functional option to set the mark color
func WithMarkColor(col colorful.Color) CoordinatorBuilderOption {
	return func(c *coordinator) {
		c.markColor = col
	}
}

// WithIntensity sets the per-write blend weight. 1 replaces the texel with the mark color,
// 0 leaves it untouched. Values outside [0, 1] are clamped.
//
// Parameters:
//   - intensity: the blend weight
//
// Returns:
//   - CoordinatorBuilderOption: functional option to set the intensity
func WithIntensity(intensity float64) CoordinatorBuilderOption {
	return func(c *coordinator) {
		c.intensity = clampIntensity(intensity)
	}
}

// WithCommitWorkers enables parallel RGBA staging for ticks that touch several surfaces.
// Values <= 1 keep staging on the calling goroutine.
//
// Parameters:
//   - n: maximum number of staging workers
//
// Returns:
//   - CoordinatorBuilderOption: functional option to set the worker count
func WithCommitWorkers(n int) CoordinatorBuilderOption {
	return func(c *coordinator) {
		c.commitWorkers = n
	}
}

// WithLogger overrides the package logger for this coordinator.
//
// Parameters:
//   - l: the logger to use
//
// Returns:
//   - CoordinatorBuilderOption: functional option to set the logger
func WithLogger(l *slog.Logger) CoordinatorBuilderOption {
	return func(c *coordinator) {
		c.logger = l
	}
}

// WithCoordinatorConfig applies the mark color and intensity from cfg.
//
// Parameters:
//   - cfg: the paint configuration
//
// Returns:
//   - CoordinatorBuilderOption: functional option applying the configuration
func WithCoordinatorConfig(cfg Config) CoordinatorBuilderOption {
	return func(c *coordinator) {
		c.markColor = cfg.MarkColor
		c.intensity = clampIntensity(cfg.Intensity)
	}
}
