package renderer

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithNullFallback lets NewRenderer fall back to the null backend when no GPU device can be acquired.
//
// Parameters:
//   - fallback: true to fall back instead of failing
//
// Returns:
//   - RendererBuilderOption: a function that applies the fallback option to a renderer
func WithNullFallback(fallback bool) RendererBuilderOption {
	return func(r *renderer) {
		r.fallbackToNull = fallback
	}
}

// WithSampler sets the sampler configuration used for every painted texture.
// Zero fields keep the repeat/nearest defaults.
//
// Parameters:
//   - s: the sampler configuration
//
// Returns:
//   - RendererBuilderOption: a function that applies the sampler option to a renderer
func WithSampler(s SamplerStagingData) RendererBuilderOption {
	return func(r *renderer) {
		r.sampler = s
	}
}
