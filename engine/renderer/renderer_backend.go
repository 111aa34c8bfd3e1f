package renderer

import (
	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU backend. Textures live on a headless GPU device.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeNull selects a CPU-only backend that records uploads without a GPU.
	// Used on machines without an adapter and in tests.
	BackendTypeNull
)

// String returns the backend name for logging.
func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeWGPU:
		return "wgpu"
	case BackendTypeNull:
		return "null"
	default:
		return "unknown"
	}
}

// Bindings inside each texture's BindGroupProvider.
const (
	TextureBinding = 0
	SamplerBinding = 1
)

// SamplerStagingData holds the configuration for a sampler pending GPU creation.
// Zero fields fall back to repeat addressing with nearest filtering, which keeps painted
// texels crisp and lets tiling factors above 1 repeat the texture across a surface.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range.
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}

// RendererBackend is the interface every backend implements.
type RendererBackend interface {
	// UploadTexture creates the texture identified by provider's label on first use and
	// overwrites its contents afterwards. A size change recreates the texture.
	//
	// Parameters:
	//   - provider: the BindGroupProvider that holds the texture view and sampler
	//   - data: RGBA8 pixels
	//
	// Returns:
	//   - error: an error if the texture could not be created or written
	UploadTexture(provider bind_group_provider.BindGroupProvider, data common.TextureStagingData) error

	// ReleaseTexture frees the GPU texture associated with provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider whose texture to release
	ReleaseTexture(provider bind_group_provider.BindGroupProvider)

	// Release frees the device and every backend-owned resource.
	Release()
}
