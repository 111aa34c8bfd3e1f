package renderer

import (
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-paint/engine/renderer/material"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	providers map[string]bind_group_provider.BindGroupProvider

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	fallbackToNull       bool
	sampler              SamplerStagingData
}

// Renderer owns the display-side textures painted surfaces publish into.
//
// The Renderer is the TextureUploader materials forward their SetTexture calls to. Each
// distinct label gets its own BindGroupProvider holding the texture, view and sampler.
// Uploads must come from the goroutine that owns the display resources, which in this
// engine is the render goroutine running the paint tick.
type Renderer interface {
	material.TextureUploader
	material.TextureReleaser

	// BackendType reports which backend was created.
	//
	// Returns:
	//   - RendererBackendType: the active backend
	BackendType() RendererBackendType

	// TextureProvider retrieves the BindGroupProvider for label, or nil if nothing was uploaded under it.
	//
	// Parameters:
	//   - label: the texture label
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider or nil
	TextureProvider(label string) bind_group_provider.BindGroupProvider

	// TextureLabels returns every uploaded label in sorted order.
	TextureLabels() []string

	// Release frees every texture and the backend itself.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer with the given backend.
// When the WGPU backend cannot acquire a device and WithNullFallback(true) was passed, the
// renderer logs the failure and continues with the null backend.
//
// Parameters:
//   - backendType: the backend to create
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the new renderer
//   - error: non-nil if the backend could not be created
func NewRenderer(backendType RendererBackendType, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		providers:   make(map[string]bind_group_provider.BindGroupProvider),
		backendType: backendType,
	}
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		b, err := newWGPURendererBackend(r.forceFallbackAdapter, r.sampler)
		if err != nil {
			if !r.fallbackToNull {
				return nil, fmt.Errorf("renderer: %w", err)
			}
			log.Printf("[Renderer] wgpu unavailable (%v), using null backend", err)
			r.backendType = BackendTypeNull
			r.backend = newNullRendererBackend()
			break
		}
		r.backend = b
	case BackendTypeNull:
		r.backend = newNullRendererBackend()
	default:
		return nil, fmt.Errorf("renderer: unknown backend type %d", backendType)
	}

	return r, nil
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) UploadTexture(label string, data common.TextureStagingData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("upload %s: %w", label, err)
	}

	r.mu.Lock()
	p, ok := r.providers[label]
	if !ok {
		p = bind_group_provider.NewBindGroupProvider(label)
		r.providers[label] = p
	}
	r.mu.Unlock()

	if err := r.backend.UploadTexture(p, data); err != nil {
		return fmt.Errorf("upload %s: %w", label, err)
	}
	return nil
}

func (r *renderer) TextureProvider(label string) bind_group_provider.BindGroupProvider {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.providers[label]
}

func (r *renderer) TextureLabels() []string {
	r.mu.Lock()
	labels := make([]string, 0, len(r.providers))
	for label := range r.providers {
		labels = append(labels, label)
	}
	r.mu.Unlock()

	slices.Sort(labels)
	return labels
}

func (r *renderer) ReleaseTexture(label string) {
	r.mu.Lock()
	p, ok := r.providers[label]
	delete(r.providers, label)
	r.mu.Unlock()

	if ok {
		r.backend.ReleaseTexture(p)
	}
}

func (r *renderer) Release() {
	r.mu.Lock()
	providers := r.providers
	r.providers = make(map[string]bind_group_provider.BindGroupProvider)
	r.mu.Unlock()

	for _, p := range providers {
		r.backend.ReleaseTexture(p)
	}
	r.backend.Release()
}
