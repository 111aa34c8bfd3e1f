package paint

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultIntensity is the blend weight applied once per write: each hit moves the texel
	// a quarter of the way toward the mark color.
	DefaultIntensity = 0.25

	// DefaultTexelDensity is the number of texels allocated per world unit of surface scale.
	DefaultTexelDensity float32 = 96

	// DefaultTextureParam is the material parameter name committed buffers are published under.
	DefaultTextureParam = "PaintedTexture"
)

var (
	// DefaultMarkColor is the color sprayed onto surfaces.
	DefaultMarkColor = colorful.Color{R: 1, G: 1, B: 1}

	// DefaultBaseColor is the unpainted color every texel starts with.
	DefaultBaseColor = colorful.Color{R: 0, G: 0, B: 0}
)

// Config groups the tunable constants of the paint engine.
type Config struct {
	// MarkColor is the color each hit blends toward.
	MarkColor colorful.Color
	// BaseColor is the initial color of every texel.
	BaseColor colorful.Color
	// Intensity is the blend weight in [0, 1]; 1 replaces the texel outright.
	Intensity float64
	// TexelDensity is texels per world unit, used to size buffers from surface scale.
	TexelDensity float32
	// TextureParam is the display resource parameter a commit writes to.
	TextureParam string
}

// DefaultConfig returns the stock configuration: white marks on black at 0.25 intensity,
// 96 texels per unit, published to "PaintedTexture".
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		MarkColor:    DefaultMarkColor,
		BaseColor:    DefaultBaseColor,
		Intensity:    DefaultIntensity,
		TexelDensity: DefaultTexelDensity,
		TextureParam: DefaultTextureParam,
	}
}

// ParseColor parses a "#rrggbb" hex string into a color.
//
// Parameters:
//   - hex: the color in hex notation
//
// Returns:
//   - colorful.Color: the parsed color
//   - error: non-nil if hex is malformed
func ParseColor(hex string) (colorful.Color, error) {
	return colorful.Hex(hex)
}

// BufferSize derives paint buffer dimensions from a surface's physical scale.
// Any positive extent yields at least one texel; non-positive extents yield 0 so that
// buffer creation fails with ErrInvalidDimension.
//
// Parameters:
//   - scaleX: surface extent along its U axis in world units
//   - scaleY: surface extent along its V axis in world units
//   - density: texels per world unit
//
// Returns:
//   - width, height: buffer dimensions in texels
func BufferSize(scaleX, scaleY, density float32) (width, height int) {
	return texelsFor(scaleX, density), texelsFor(scaleY, density)
}

func texelsFor(extent, density float32) int {
	p := float64(extent) * float64(density)
	if !(p > 0) || math.IsInf(p, 0) {
		return 0
	}
	// Absorb float32 noise so 0.5*96 does not round up to 49.
	return max(int(math.Ceil(p-1e-4)), 1)
}
