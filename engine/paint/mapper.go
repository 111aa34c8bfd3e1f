package paint

// MapToTexel converts a normalized surface coordinate to an integer texel address.
//
// The continuous pixel position is u*width*tilingX, v*height*tilingY, truncated toward
// zero. Tiling factors above 1 can push the position past the buffer edge; such addresses
// are clamped into [0,width-1]x[0,height-1] rather than wrapped, so a hit on a repeated
// tile lands on the nearest edge texel instead of silently painting another tile's texel.
// NaN and negative positions clamp to 0.
//
// Parameters:
//   - u, v: normalized surface coordinates in [0, 1]
//   - tilingX, tilingY: texture tiling factors (> 0)
//   - width, height: buffer dimensions in texels (> 0)
//
// Returns:
//   - x, y: texel address inside the buffer
func MapToTexel(u, v, tilingX, tilingY float32, width, height int) (x, y int) {
	px := float64(u) * float64(width) * float64(tilingX)
	py := float64(v) * float64(height) * float64(tilingY)
	return clampTexel(px, width), clampTexel(py, height)
}

// MapHit maps a hit record onto a buffer of the given size using the record's tiling.
func MapHit(hit RayHitRecord, width, height int) (x, y int) {
	return MapToTexel(hit.U, hit.V, hit.TilingX, hit.TilingY, width, height)
}

func clampTexel(p float64, size int) int {
	if !(p >= 0) || size <= 0 {
		return 0
	}
	if p >= float64(size) {
		return size - 1
	}
	return int(p)
}
