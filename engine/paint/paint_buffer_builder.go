package paint

import "github.com/lucasb-eyer/go-colorful"

// PaintBufferBuilderOption is a functional option for configuring a PaintBuffer during construction.
type PaintBufferBuilderOption func(*paintBuffer)

// WithBaseColor sets the unpainted color every texel is initialized to.
//
// Parameters:
//   - c: the base color
//
// Returns:
//   - PaintBufferBuilderOption: functional option to set the base color
func WithBaseColor(c colorful.Color) PaintBufferBuilderOption {
	return func(b *paintBuffer) {
		b.baseColor = c
	}
}

// WithDisplay binds the display resource that commits publish to.
//
// Parameters:
//   - d: the display resource
//
// Returns:
//   - PaintBufferBuilderOption: functional option to set the display resource
func WithDisplay(d DisplayResource) PaintBufferBuilderOption {
	return func(b *paintBuffer) {
		b.display = d
	}
}

// WithTextureParam overrides the texture parameter name commits are published under.
// Empty names are ignored.
//
// Parameters:
//   - name: the parameter name
//
// Returns:
//   - PaintBufferBuilderOption: functional option to set the parameter name
func WithTextureParam(name string) PaintBufferBuilderOption {
	return func(b *paintBuffer) {
		if name != "" {
			b.textureParam = name
		}
	}
}

// WithConfig applies the base color and texture parameter from cfg.
//
// Parameters:
//   - cfg: the paint configuration
//
// Returns:
//   - PaintBufferBuilderOption: functional option applying the configuration
func WithConfig(cfg Config) PaintBufferBuilderOption {
	return func(b *paintBuffer) {
		b.baseColor = cfg.BaseColor
		if cfg.TextureParam != "" {
			b.textureParam = cfg.TextureParam
		}
	}
}
