package scene

import (
	"github.com/Carmen-Shannon/oxy-paint/engine/game_object"
	"github.com/Carmen-Shannon/oxy-paint/engine/paint"
	"github.com/Carmen-Shannon/oxy-paint/engine/renderer/material"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs; paintable objects get their paint buffers.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		s.pending = append(s.pending, objects...)
	}
}

// WithPaintConfig sets the paint configuration used for every surface the scene creates.
// Zero fields keep their defaults.
//
// Parameters:
//   - cfg: the paint configuration
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPaintConfig(cfg paint.Config) SceneBuilderOption {
	return func(s *scene) {
		def := paint.DefaultConfig()
		if cfg.TexelDensity <= 0 {
			cfg.TexelDensity = def.TexelDensity
		}
		if cfg.TextureParam == "" {
			cfg.TextureParam = def.TextureParam
		}
		if cfg.Intensity == 0 {
			cfg.Intensity = def.Intensity
		}
		s.cfg = cfg
	}
}

// WithTexelDensity sets how many texels a surface gets per world unit of scale.
//
// Parameters:
//   - density: texels per world unit
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTexelDensity(density float32) SceneBuilderOption {
	return func(s *scene) {
		if density > 0 {
			s.cfg.TexelDensity = density
		}
	}
}

// WithRegistry shares an existing SurfaceRegistry instead of creating a new one.
//
// Parameters:
//   - r: the registry to populate
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRegistry(r paint.SurfaceRegistry) SceneBuilderOption {
	return func(s *scene) {
		s.surfaces = r
	}
}

// WithUploader sets the TextureUploader attached to materials of paintable objects that
// do not carry one. Pass the Renderer to put painted textures on the GPU.
//
// Parameters:
//   - u: the uploader
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithUploader(u material.TextureUploader) SceneBuilderOption {
	return func(s *scene) {
		s.uploader = u
	}
}
