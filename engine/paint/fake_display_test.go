package paint

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-paint/common"
)

// fakeDisplay records every texture published to it.
type fakeDisplay struct {
	names    []string
	frames   [][]byte
	tilingX  float32
	tilingY  float32
	failNext bool
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{tilingX: 1, tilingY: 1}
}

func (f *fakeDisplay) SetTexture(name string, data common.TextureStagingData) error {
	if f.failNext {
		f.failNext = false
		return errors.New("upload rejected")
	}
	f.names = append(f.names, name)
	f.frames = append(f.frames, append([]byte(nil), data.Pixels...))
	return nil
}

func (f *fakeDisplay) SetTiling(x, y float32) {
	f.tilingX, f.tilingY = x, y
}

func (f *fakeDisplay) Tiling() (float32, float32) {
	return f.tilingX, f.tilingY
}

func (f *fakeDisplay) publishes() int {
	return len(f.frames)
}
