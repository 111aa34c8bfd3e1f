// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "fmt"

// BytesPerPixel is the stride of a single RGBA8 pixel inside TextureStagingData.
const BytesPerPixel = 4

// TextureStagingData holds RGBA pixel data for a texture pending upload to a display resource.
// Paint buffers produce one of these on commit; materials and the renderer consume it.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel,
	// row-major with row 0 at the top.
	Pixels []byte
	// Width is the width of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Width uint32
	// Height is the height of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Height uint32
}

// NewTextureStagingData allocates a zeroed RGBA staging area of the given size.
//
// Parameters:
//   - width: texture width in pixels
//   - height: texture height in pixels
//
// Returns:
//   - TextureStagingData: staging data with a Pixels slice of width*height*4 bytes
func NewTextureStagingData(width, height uint32) TextureStagingData {
	return TextureStagingData{
		Pixels: make([]byte, int(width)*int(height)*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// BytesPerRow returns the row pitch of the staging data in bytes.
func (t TextureStagingData) BytesPerRow() uint32 {
	return t.Width * BytesPerPixel
}

// Offset returns the byte offset of pixel (x, y) within Pixels.
//
// Parameters:
//   - x: column index
//   - y: row index
//
// Returns:
//   - int: the index of the pixel's red channel
func (t TextureStagingData) Offset(x, y int) int {
	return (y*int(t.Width) + x) * BytesPerPixel
}

// RGBA returns the four channels of pixel (x, y).
// Coordinates must lie inside the texture.
func (t TextureStagingData) RGBA(x, y int) (r, g, b, a uint8) {
	i := t.Offset(x, y)
	return t.Pixels[i], t.Pixels[i+1], t.Pixels[i+2], t.Pixels[i+3]
}

// Validate reports whether the pixel slice length matches the declared dimensions.
//
// Returns:
//   - error: non-nil if the staging data is empty or inconsistent
func (t TextureStagingData) Validate() error {
	if t.Width == 0 || t.Height == 0 {
		return fmt.Errorf("texture staging data has zero size %dx%d", t.Width, t.Height)
	}
	if want := int(t.Width) * int(t.Height) * BytesPerPixel; len(t.Pixels) != want {
		return fmt.Errorf("texture staging data holds %d bytes, want %d for %dx%d", len(t.Pixels), want, t.Width, t.Height)
	}
	return nil
}
