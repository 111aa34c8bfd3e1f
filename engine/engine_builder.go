package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-paint/engine/camera"
	"github.com/Carmen-Shannon/oxy-paint/engine/paint"
	"github.com/Carmen-Shannon/oxy-paint/engine/scene"
	"github.com/Carmen-Shannon/oxy-paint/engine/spray"
	"github.com/Carmen-Shannon/oxy-paint/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow attaches a window whose input drives the camera and sprayer.
// Without a window the engine runs headless until Quit.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene sets the scene whose paintable surfaces the engine paints.
//
// Parameters:
//   - s: the Scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithCamera sets the viewpoint the sprayer fires from.
//
// Parameters:
//   - c: the Camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.cam = c
	}
}

// WithSprayer sets the ray source fired each tick.
//
// Parameters:
//   - s: the Sprayer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSprayer(s spray.Sprayer) EngineBuilderOption {
	return func(e *engine) {
		e.sprayer = s
	}
}

// WithCoordinatorOptions configures the paint Coordinator the engine builds for its scene.
//
// Parameters:
//   - options: paint coordinator options such as paint.WithMarkColor
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCoordinatorOptions(options ...paint.CoordinatorBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.coordinatorOptions = append(e.coordinatorOptions, options...)
	}
}

// WithCoordinator replaces the paint Coordinator instead of building one for the scene.
//
// Parameters:
//   - c: the Coordinator
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCoordinator(c paint.Coordinator) EngineBuilderOption {
	return func(e *engine) {
		e.coordinator = c
	}
}

// WithRenderFrameLimit sets the render frame rate cap in frames per second.
// Defaults to 240. Pass 0 to uncap the render loop.
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
