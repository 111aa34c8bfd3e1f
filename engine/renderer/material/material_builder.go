package material

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the albedo/diffuse RGBA color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithEmissionColor is an option builder that sets the RGBA emission color of the material.
//
// Parameters:
//   - color: the emission color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emission option to a material
func WithEmissionColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.emission = color
	}
}

// WithTiling is an option builder that sets the texture tiling scale. Zero components fall back to 1.
//
// Parameters:
//   - x: tiling along U
//   - y: tiling along V
//
// Returns:
//   - MaterialBuilderOption: a function that applies the tiling option to a material
func WithTiling(x, y float32) MaterialBuilderOption {
	return func(m *material) {
		if x != 0 {
			m.tilingX = x
		}
		if y != 0 {
			m.tilingY = y
		}
	}
}

// WithUploader is an option builder that sets the uploader textures are pushed through.
//
// Parameters:
//   - u: the texture uploader, typically the renderer
//
// Returns:
//   - MaterialBuilderOption: a function that applies the uploader option to a material
func WithUploader(u TextureUploader) MaterialBuilderOption {
	return func(m *material) {
		m.uploader = u
	}
}
