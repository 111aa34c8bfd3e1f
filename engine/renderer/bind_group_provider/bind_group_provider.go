package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is the texture label, "<material>/<parameter>".
	label string

	// The following fields are GPU allocated resources and must be released when no longer needed.
	// They are populated by the Renderer on first upload, not by user-creation.

	// texture is the GPU texture backing the provider, or nil before the first upload.
	texture *wgpu.Texture
	// width and height are the dimensions texture was created with.
	width, height uint32
	// textureViews holds the GPU texture views created for this provider, keyed by binding index.
	textureViews map[int]*wgpu.TextureView
	// samplers holds the GPU samplers created for this provider, keyed by binding index.
	samplers map[int]*wgpu.Sampler

	// uploads counts how many times texture data was written through this provider.
	uploads uint64
}

// BindGroupProvider holds the GPU resources a surface's painted texture is bound with:
// the texture itself, its view and the sampler it is read through.
//
// Usage pattern:
//  1. Renderer.UploadTexture creates a provider for a new label
//  2. The backend creates the texture, view and sampler and stores them on the provider
//  3. Later uploads write into the existing texture while its size is unchanged
//  4. Release frees everything when the surface goes away
type BindGroupProvider interface {
	// Release releases any GPU resources held by this provider.
	Release()

	// Label returns the texture label for this provider.
	//
	// Returns:
	//   - string: the label
	Label() string

	// Texture returns the GPU texture, or nil before the first upload.
	//
	// Returns:
	//   - *wgpu.Texture: the texture or nil
	Texture() *wgpu.Texture

	// Size returns the dimensions of the current texture.
	//
	// Returns:
	//   - width, height: texture size in pixels, zero before the first upload
	Size() (width, height uint32)

	// TextureView returns the GPU texture view for a specific binding, or nil if not set.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.TextureView: the texture view or nil
	TextureView(binding int) *wgpu.TextureView

	// Sampler returns the GPU sampler for a specific binding, or nil if not set.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Sampler: the sampler or nil
	Sampler(binding int) *wgpu.Sampler

	// Uploads returns the number of texture writes performed through this provider.
	Uploads() uint64

	// SetTexture stores the GPU texture and its dimensions after creation.
	//
	// Parameters:
	//   - tex: the created texture
	//   - width, height: its size in pixels
	SetTexture(tex *wgpu.Texture, width, height uint32)

	// SetTextureView stores a GPU texture view for a specific binding.
	//
	// Parameters:
	//   - binding: the binding index
	//   - tv: the texture view to store
	SetTextureView(binding int, tv *wgpu.TextureView)

	// SetSampler stores a GPU sampler for a specific binding.
	//
	// Parameters:
	//   - binding: the binding index
	//   - s: the sampler to store
	SetSampler(binding int, s *wgpu.Sampler)

	// RecordUpload increments the upload counter. Called by the backend after each write.
	RecordUpload()

	// ReleaseTexture releases the texture and its views but keeps samplers, so the texture
	// can be recreated at a new size.
	ReleaseTexture()
}

// Compile-time check that bindGroupProvider implements BindGroupProvider
var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates a new BindGroupProvider with the provided options.
//
// Parameters:
//   - label: the texture label
//   - options: a variadic list of options to configure the provider
//
// Returns:
//   - BindGroupProvider: a new instance of BindGroupProvider configured with the provided options
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:        label,
		textureViews: make(map[int]*wgpu.TextureView),
		samplers:     make(map[int]*wgpu.Sampler),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) Texture() *wgpu.Texture {
	return p.texture
}

func (p *bindGroupProvider) Size() (uint32, uint32) {
	return p.width, p.height
}

func (p *bindGroupProvider) TextureView(binding int) *wgpu.TextureView {
	return p.textureViews[binding]
}

func (p *bindGroupProvider) Sampler(binding int) *wgpu.Sampler {
	return p.samplers[binding]
}

func (p *bindGroupProvider) Uploads() uint64 {
	return p.uploads
}

func (p *bindGroupProvider) SetTexture(tex *wgpu.Texture, width, height uint32) {
	p.texture = tex
	p.width = width
	p.height = height
}

func (p *bindGroupProvider) SetTextureView(binding int, tv *wgpu.TextureView) {
	if p.textureViews == nil {
		p.textureViews = make(map[int]*wgpu.TextureView)
	}
	p.textureViews[binding] = tv
}

func (p *bindGroupProvider) SetSampler(binding int, s *wgpu.Sampler) {
	if p.samplers == nil {
		p.samplers = make(map[int]*wgpu.Sampler)
	}
	p.samplers[binding] = s
}

func (p *bindGroupProvider) RecordUpload() {
	p.uploads++
}

func (p *bindGroupProvider) ReleaseTexture() {
	for i, tv := range p.textureViews {
		if tv != nil {
			tv.Release()
		}
		delete(p.textureViews, i)
	}
	if p.texture != nil {
		p.texture.Release()
		p.texture = nil
	}
	p.width, p.height = 0, 0
}

func (p *bindGroupProvider) Release() {
	p.ReleaseTexture()
	for i, s := range p.samplers {
		if s != nil {
			s.Release()
		}
		delete(p.samplers, i)
	}
}
