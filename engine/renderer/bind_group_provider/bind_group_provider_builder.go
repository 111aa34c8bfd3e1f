package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithTexture sets a pre-created texture for this provider.
//
// Parameters:
//   - tex: the texture
//   - width, height: its size in pixels
//
// Returns:
//   - BindGroupProviderOption: a function that sets the texture for this provider
func WithTexture(tex *wgpu.Texture, width, height uint32) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.texture = tex
		p.width = width
		p.height = height
	}
}

// WithSampler sets a sampler for a specific binding index.
//
// Parameters:
//   - binding: the binding index for this sampler
//   - s: the sampler to associate with this binding
//
// Returns:
//   - BindGroupProviderOption: a function that sets the sampler for the specified binding
func WithSampler(binding int, s *wgpu.Sampler) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.samplers[binding] = s
	}
}
