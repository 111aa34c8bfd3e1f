package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/renderer/bind_group_provider"
)

// nullRendererBackend accepts uploads without a GPU, keeping the last pixels per label.
type nullRendererBackend struct {
	mu   *sync.Mutex
	last map[string]common.TextureStagingData
}

var _ RendererBackend = &nullRendererBackend{}

func newNullRendererBackend() *nullRendererBackend {
	return &nullRendererBackend{
		mu:   &sync.Mutex{},
		last: make(map[string]common.TextureStagingData),
	}
}

func (b *nullRendererBackend) UploadTexture(provider bind_group_provider.BindGroupProvider, data common.TextureStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev := b.last[provider.Label()]
	if prev.Width != data.Width || prev.Height != data.Height {
		prev = common.NewTextureStagingData(data.Width, data.Height)
	}
	copy(prev.Pixels, data.Pixels)
	b.last[provider.Label()] = prev
	provider.RecordUpload()
	return nil
}

func (b *nullRendererBackend) ReleaseTexture(provider bind_group_provider.BindGroupProvider) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.last, provider.Label())
}

func (b *nullRendererBackend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.last)
}

// snapshot returns the last pixels uploaded under label.
func (b *nullRendererBackend) snapshot(label string) (common.TextureStagingData, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.last[label]
	return data, ok
}
