package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// wgpuRendererBackendImpl owns a headless WebGPU device. Painted textures are created on it
// and refreshed with queue writes; binding them into draw passes is left to the host renderer.
type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter

	sampler SamplerStagingData
	format  wgpu.TextureFormat
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(forceFallbackAdapter bool, sampler SamplerStagingData) (*wgpuRendererBackendImpl, error) {
	w := &wgpuRendererBackendImpl{
		mu:       &sync.Mutex{},
		instance: wgpu.CreateInstance(nil),
		sampler:  sampler,
		format:   wgpu.TextureFormatRGBA8UnormSrgb,
	}

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
	})
	if err != nil {
		w.instance.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Paint Device",
	})
	if err != nil {
		a.Release()
		w.instance.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w, nil
}

func (b *wgpuRendererBackendImpl) UploadTexture(provider bind_group_provider.BindGroupProvider, data common.TextureStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if w, h := provider.Size(); provider.Texture() == nil || w != data.Width || h != data.Height {
		if err := b.createTexture(provider, data.Width, data.Height); err != nil {
			return err
		}
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  provider.Texture(),
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		data.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  data.BytesPerRow(),
			RowsPerImage: data.Height,
		},
		&wgpu.Extent3D{
			Width:              data.Width,
			Height:             data.Height,
			DepthOrArrayLayers: 1,
		},
	)
	provider.RecordUpload()

	return nil
}

// createTexture (re)creates the texture, view and, on first use, sampler for provider.
// Must be called with b.mu held.
func (b *wgpuRendererBackendImpl) createTexture(provider bind_group_provider.BindGroupProvider, width, height uint32) error {
	provider.ReleaseTexture()

	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     provider.Label() + " Texture",
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        b.format,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return fmt.Errorf("create texture %s: %w", provider.Label(), err)
	}
	provider.SetTexture(tex, width, height)

	view, err := tex.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create view %s: %w", provider.Label(), err)
	}
	provider.SetTextureView(TextureBinding, view)

	if provider.Sampler(SamplerBinding) != nil {
		return nil
	}
	samp, err := b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         provider.Label() + " Sampler",
		AddressModeU:  common.Coalesce(b.sampler.AddressModeU, wgpu.AddressModeRepeat),
		AddressModeV:  common.Coalesce(b.sampler.AddressModeV, wgpu.AddressModeRepeat),
		AddressModeW:  common.Coalesce(b.sampler.AddressModeW, wgpu.AddressModeRepeat),
		MagFilter:     common.Coalesce(b.sampler.MagFilter, wgpu.FilterModeNearest),
		MinFilter:     common.Coalesce(b.sampler.MinFilter, wgpu.FilterModeNearest),
		MipmapFilter:  common.Coalesce(b.sampler.MipmapFilter, wgpu.MipmapFilterModeNearest),
		LodMinClamp:   common.Coalesce(b.sampler.LodMinClamp, 0.0),
		LodMaxClamp:   common.Coalesce(b.sampler.LodMaxClamp, 32.0),
		MaxAnisotropy: common.Coalesce(b.sampler.MaxAnisotropy, 1),
	})
	if err != nil {
		return fmt.Errorf("create sampler %s: %w", provider.Label(), err)
	}
	provider.SetSampler(SamplerBinding, samp)

	return nil
}

func (b *wgpuRendererBackendImpl) ReleaseTexture(provider bind_group_provider.BindGroupProvider) {
	b.mu.Lock()
	defer b.mu.Unlock()
	provider.Release()
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
