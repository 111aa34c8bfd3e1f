package paint

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/lucasb-eyer/go-colorful"
)

// paintBuffer is the implementation of the PaintBuffer interface.
type paintBuffer struct {
	width     int
	height    int
	baseColor colorful.Color
	texels    []colorful.Color // row-major, row 0 is v = 0

	display      DisplayResource
	textureParam string

	generation          uint64 // bumped on every mutation
	committedGeneration uint64 // generation last published
	commits             uint64

	staged    common.TextureStagingData
	stagedGen uint64
	hasStaged bool
}

// PaintBuffer is the persistent per-surface texel grid that accumulates paint marks across ticks.
//
// Writes land in memory immediately; Commit publishes the whole grid to the surface's
// DisplayResource. The buffer is not internally synchronized: exactly one goroutine may
// write or commit at a time, and Stage may only run concurrently with nothing else on the
// same buffer.
type PaintBuffer interface {
	// Width returns the number of texel columns.
	Width() int

	// Height returns the number of texel rows.
	Height() int

	// BaseColor returns the unpainted color the buffer was created with.
	BaseColor() colorful.Color

	// Texel returns the color held at (x, y).
	//
	// Parameters:
	//   - x: column in [0, Width())
	//   - y: row in [0, Height())
	//
	// Returns:
	//   - colorful.Color: the texel color
	//   - error: ErrOutOfBounds if (x, y) is outside the grid
	Texel(x, y int) (colorful.Color, error)

	// WriteTexel replaces the color at (x, y). Repeated writes to the same texel keep the last one.
	//
	// Parameters:
	//   - x: column in [0, Width())
	//   - y: row in [0, Height())
	//   - c: the new color
	//
	// Returns:
	//   - error: ErrOutOfBounds if (x, y) is outside the grid
	WriteTexel(x, y int, c colorful.Color) error

	// Clear refills every texel with the base color and marks the buffer dirty.
	Clear()

	// Dirty reports whether writes have happened since the last successful commit.
	Dirty() bool

	// Generation returns a counter incremented by every mutation.
	Generation() uint64

	// CommittedGeneration returns the generation that was last published.
	CommittedGeneration() uint64

	// Commits returns how many times the buffer has actually published to its display resource.
	// No-op commits are not counted.
	Commits() uint64

	// Stage packs the grid into RGBA8 staging data. The result is cached until the next mutation
	// and shares memory with the buffer; callers must not modify or retain it across ticks.
	//
	// Returns:
	//   - common.TextureStagingData: the packed pixels
	Stage() common.TextureStagingData

	// Commit publishes the grid to the display resource and clears the dirty marker.
	// Committing a clean buffer is a no-op. With no display resource bound the grid is
	// staged and marked clean.
	//
	// Returns:
	//   - error: the display resource's error, wrapped; the buffer stays dirty on failure
	Commit() error

	// Display returns the bound display resource, or nil.
	Display() DisplayResource

	// SetDisplay binds the display resource future commits publish to.
	//
	// Parameters:
	//   - d: the display resource, or nil to detach
	SetDisplay(d DisplayResource)
}

var _ PaintBuffer = &paintBuffer{}

// NewPaintBuffer allocates a width x height grid filled with the base color (black unless
// overridden with WithBaseColor).
//
// Parameters:
//   - width: number of texel columns (> 0)
//   - height: number of texel rows (> 0)
//   - options: functional options to configure the buffer
//
// Returns:
//   - PaintBuffer: the new buffer
//   - error: ErrInvalidDimension if width or height is not positive
func NewPaintBuffer(width, height int, options ...PaintBufferBuilderOption) (PaintBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("create %dx%d buffer: %w", width, height, ErrInvalidDimension)
	}

	b := &paintBuffer{
		width:        width,
		height:       height,
		baseColor:    DefaultBaseColor,
		textureParam: DefaultTextureParam,
	}
	for _, opt := range options {
		opt(b)
	}

	b.texels = make([]colorful.Color, width*height)
	b.fill(b.baseColor)
	return b, nil
}

func (b *paintBuffer) Width() int {
	return b.width
}

func (b *paintBuffer) Height() int {
	return b.height
}

func (b *paintBuffer) BaseColor() colorful.Color {
	return b.baseColor
}

func (b *paintBuffer) Texel(x, y int) (colorful.Color, error) {
	if !b.inBounds(x, y) {
		return colorful.Color{}, b.outOfBounds(x, y)
	}
	return b.texels[y*b.width+x], nil
}

func (b *paintBuffer) WriteTexel(x, y int, c colorful.Color) error {
	if !b.inBounds(x, y) {
		return b.outOfBounds(x, y)
	}
	b.texels[y*b.width+x] = c
	b.generation++
	return nil
}

func (b *paintBuffer) Clear() {
	b.fill(b.baseColor)
	b.generation++
}

func (b *paintBuffer) Dirty() bool {
	return b.generation != b.committedGeneration
}

func (b *paintBuffer) Generation() uint64 {
	return b.generation
}

func (b *paintBuffer) CommittedGeneration() uint64 {
	return b.committedGeneration
}

func (b *paintBuffer) Commits() uint64 {
	return b.commits
}

func (b *paintBuffer) Stage() common.TextureStagingData {
	if b.hasStaged && b.stagedGen == b.generation {
		return b.staged
	}
	if b.staged.Pixels == nil {
		b.staged = common.NewTextureStagingData(uint32(b.width), uint32(b.height))
	}

	px := b.staged.Pixels
	for i, c := range b.texels {
		r, g, bl := c.Clamped().RGB255()
		o := i * common.BytesPerPixel
		px[o] = r
		px[o+1] = g
		px[o+2] = bl
		px[o+3] = 0xff
	}

	b.stagedGen = b.generation
	b.hasStaged = true
	return b.staged
}

func (b *paintBuffer) Commit() error {
	if !b.Dirty() {
		return nil
	}

	data := b.Stage()
	if b.display != nil {
		if err := b.display.SetTexture(b.textureParam, data); err != nil {
			return fmt.Errorf("commit %s: %w", b.textureParam, err)
		}
	}

	b.committedGeneration = b.generation
	b.commits++
	return nil
}

func (b *paintBuffer) Display() DisplayResource {
	return b.display
}

func (b *paintBuffer) SetDisplay(d DisplayResource) {
	b.display = d
}

func (b *paintBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *paintBuffer) outOfBounds(x, y int) error {
	return fmt.Errorf("texel (%d,%d) outside %dx%d: %w", x, y, b.width, b.height, ErrOutOfBounds)
}

func (b *paintBuffer) fill(c colorful.Color) {
	for i := range b.texels {
		b.texels[i] = c
	}
}
