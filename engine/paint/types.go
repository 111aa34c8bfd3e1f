package paint

import "github.com/Carmen-Shannon/oxy-paint/common"

// SurfaceID identifies a paintable surface. Scenes use their object IDs directly.
type SurfaceID uint64

// RayHitRecord is one ray strike produced by the ray source during a tick.
// Records are consumed by the coordinator within the same tick and never persisted.
type RayHitRecord struct {
	// Surface is the struck surface's identifier.
	Surface SurfaceID
	// U, V are the normalized surface coordinates of the strike, each in [0, 1].
	U, V float32
	// TilingX, TilingY are the texture tiling factors bound to the surface at the time of the strike.
	TilingX, TilingY float32
}

// DisplayResource is the externally visible side of a paintable surface: a settable
// texture-valued parameter plus the tiling scale that texture is sampled with.
// Implementations are only ever called from the goroutine running ProcessTick.
type DisplayResource interface {
	// SetTexture publishes pixel data under the named texture parameter.
	// Implementations must copy data if they retain it; the buffer reuses its staging memory.
	//
	// Parameters:
	//   - name: the texture parameter, e.g. "PaintedTexture"
	//   - data: RGBA8 pixels sized to the paint buffer
	//
	// Returns:
	//   - error: non-nil if the resource could not accept the texture
	SetTexture(name string, data common.TextureStagingData) error

	// SetTiling sets the texture tiling scale.
	//
	// Parameters:
	//   - x, y: tiling factors along U and V
	SetTiling(x, y float32)

	// Tiling returns the texture tiling scale currently bound.
	//
	// Returns:
	//   - x, y: tiling factors along U and V
	Tiling() (x, y float32)
}
