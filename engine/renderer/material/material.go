package material

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/paint"
)

// material is the implementation of the Material interface.
type material struct {
	mu        *sync.RWMutex
	name      string
	baseColor [4]float32
	emission  [4]float32
	tilingX   float32
	tilingY   float32
	textures  map[string]*common.TextureStagingData
	revisions map[string]uint64
	uploader  TextureUploader
}

// TextureUploader pushes texture data to a GPU (or any other display backend).
// The renderer implements it; a material without one only keeps the CPU copy.
type TextureUploader interface {
	// UploadTexture creates or overwrites the texture identified by label.
	//
	// Parameters:
	//   - label: unique texture label
	//   - data: RGBA8 pixels
	//
	// Returns:
	//   - error: non-nil if the upload failed
	UploadTexture(label string, data common.TextureStagingData) error
}

// TextureReleaser is implemented by uploaders that can free an uploaded texture.
type TextureReleaser interface {
	// ReleaseTexture frees the texture stored under label. Unknown labels are ignored.
	ReleaseTexture(label string)
}

// Material defines the interface for a surface material: a base color, named texture
// parameters such as "PaintedTexture", and the tiling scale those textures are sampled with.
//
// Material is the display resource paint buffers commit to. Texture data passed to
// SetTexture is copied, so the caller may reuse its staging memory afterwards.
type Material interface {
	paint.DisplayResource

	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo/diffuse RGBA color of the material.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// EmissionColor retrieves the RGBA emission color, black when unset.
	EmissionColor() [4]float32

	// Texture retrieves a copy of the named texture parameter.
	//
	// Parameters:
	//   - name: the texture parameter name
	//
	// Returns:
	//   - common.TextureStagingData: the texture pixels
	//   - bool: false if the parameter has never been set
	Texture(name string) (common.TextureStagingData, bool)

	// TextureRevision returns how many times the named texture has been set.
	//
	// Parameters:
	//   - name: the texture parameter name
	//
	// Returns:
	//   - uint64: the number of SetTexture calls for name
	TextureRevision(name string) uint64

	// ReleaseTexture drops the named texture's CPU copy and frees its upload when the
	// uploader implements TextureReleaser. The revision counter is kept.
	//
	// Parameters:
	//   - name: the texture parameter name
	ReleaseTexture(name string)

	// TextureLabel returns the label the named texture is uploaded under.
	//
	// Parameters:
	//   - name: the texture parameter name
	//
	// Returns:
	//   - string: "<material name>/<parameter name>"
	TextureLabel(name string) string

	// Uploader retrieves the texture uploader, or nil if none is set.
	Uploader() TextureUploader

	// SetUploader sets the texture uploader used by SetTexture.
	//
	// Parameters:
	//   - u: the uploader, or nil for CPU-only materials
	SetUploader(u TextureUploader)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Tiling defaults to (1, 1).
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		mu:        &sync.RWMutex{},
		baseColor: [4]float32{1, 1, 1, 1},
		emission:  [4]float32{0, 0, 0, 1},
		tilingX:   1,
		tilingY:   1,
		textures:  make(map[string]*common.TextureStagingData),
		revisions: make(map[string]uint64),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) EmissionColor() [4]float32 {
	return m.emission
}

func (m *material) SetTexture(name string, data common.TextureStagingData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("material %q texture %q: %w", m.name, name, err)
	}

	// Upload first: a failed upload leaves the CPU copy and revision untouched.
	uploader := m.Uploader()
	if uploader != nil {
		if err := uploader.UploadTexture(m.TextureLabel(name), data); err != nil {
			return fmt.Errorf("material %q upload %q: %w", m.name, name, err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	tex, ok := m.textures[name]
	if !ok || tex.Width != data.Width || tex.Height != data.Height {
		tex = &common.TextureStagingData{
			Pixels: make([]byte, len(data.Pixels)),
			Width:  data.Width,
			Height: data.Height,
		}
		m.textures[name] = tex
	}
	copy(tex.Pixels, data.Pixels)
	m.revisions[name]++
	return nil
}

func (m *material) Texture(name string) (common.TextureStagingData, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tex, ok := m.textures[name]
	if !ok {
		return common.TextureStagingData{}, false
	}
	return common.TextureStagingData{
		Pixels: append([]byte(nil), tex.Pixels...),
		Width:  tex.Width,
		Height: tex.Height,
	}, true
}

func (m *material) TextureRevision(name string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revisions[name]
}

func (m *material) ReleaseTexture(name string) {
	m.mu.Lock()
	delete(m.textures, name)
	uploader := m.uploader
	m.mu.Unlock()

	if r, ok := uploader.(TextureReleaser); ok {
		r.ReleaseTexture(m.TextureLabel(name))
	}
}

func (m *material) TextureLabel(name string) string {
	return m.name + "/" + name
}

func (m *material) SetTiling(x, y float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tilingX = common.Coalesce(x, 1)
	m.tilingY = common.Coalesce(y, 1)
}

func (m *material) Tiling() (x, y float32) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tilingX, m.tilingY
}

func (m *material) Uploader() TextureUploader {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.uploader
}

func (m *material) SetUploader(u TextureUploader) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploader = u
}
