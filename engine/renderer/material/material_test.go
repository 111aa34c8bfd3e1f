package material

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/paint"
)

type recordingUploader struct {
	labels   []string
	released []string
	err      error
}

func (r *recordingUploader) ReleaseTexture(label string) {
	r.released = append(r.released, label)
}

func (r *recordingUploader) UploadTexture(label string, data common.TextureStagingData) error {
	if r.err != nil {
		return r.err
	}
	r.labels = append(r.labels, label)
	return nil
}

func TestMaterial_Defaults(t *testing.T) {
	m := NewMaterial(WithName("wall"))
	if m.Name() != "wall" {
		t.Errorf("Name = %q, want wall", m.Name())
	}
	if x, y := m.Tiling(); x != 1 || y != 1 {
		t.Errorf("Tiling = (%v, %v), want (1, 1)", x, y)
	}
	if e := m.EmissionColor(); e != [4]float32{0, 0, 0, 1} {
		t.Errorf("EmissionColor = %v, want opaque black", e)
	}
	if _, ok := m.Texture(paint.DefaultTextureParam); ok {
		t.Error("new material should not have a painted texture")
	}
}

func TestMaterial_SetTextureCopies(t *testing.T) {
	m := NewMaterial(WithName("wall"))
	data := common.NewTextureStagingData(2, 1)
	data.Pixels[0] = 200

	if err := m.SetTexture("PaintedTexture", data); err != nil {
		t.Fatalf("SetTexture: %v", err)
	}
	data.Pixels[0] = 1

	got, ok := m.Texture("PaintedTexture")
	if !ok {
		t.Fatal("texture missing after SetTexture")
	}
	if got.Pixels[0] != 200 {
		t.Errorf("stored pixel = %d, want 200 (material must copy input)", got.Pixels[0])
	}
	if m.TextureRevision("PaintedTexture") != 1 {
		t.Errorf("revision = %d, want 1", m.TextureRevision("PaintedTexture"))
	}
}

func TestMaterial_SetTextureRejectsInvalid(t *testing.T) {
	m := NewMaterial()
	bad := common.TextureStagingData{Pixels: make([]byte, 3), Width: 1, Height: 1}
	if err := m.SetTexture("PaintedTexture", bad); err == nil {
		t.Error("expected error for short pixel slice")
	}
	if m.TextureRevision("PaintedTexture") != 0 {
		t.Error("rejected texture must not bump the revision")
	}
}

func TestMaterial_Uploader(t *testing.T) {
	up := &recordingUploader{}
	m := NewMaterial(WithName("floor"), WithUploader(up))

	if err := m.SetTexture("PaintedTexture", common.NewTextureStagingData(1, 1)); err != nil {
		t.Fatal(err)
	}
	if len(up.labels) != 1 || up.labels[0] != "floor/PaintedTexture" {
		t.Errorf("uploaded labels = %v, want [floor/PaintedTexture]", up.labels)
	}

	up.err = errors.New("device lost")
	if err := m.SetTexture("PaintedTexture", common.NewTextureStagingData(1, 1)); err == nil {
		t.Error("expected upload error to propagate")
	}
}

func TestMaterial_FailedUploadKeepsPreviousContent(t *testing.T) {
	up := &recordingUploader{}
	m := NewMaterial(WithName("floor"), WithUploader(up))

	first := common.NewTextureStagingData(1, 1)
	first.Pixels[0] = 10
	if err := m.SetTexture("PaintedTexture", first); err != nil {
		t.Fatal(err)
	}

	up.err = errors.New("device lost")
	second := common.NewTextureStagingData(1, 1)
	second.Pixels[0] = 99
	if err := m.SetTexture("PaintedTexture", second); err == nil {
		t.Fatal("expected upload error")
	}

	if rev := m.TextureRevision("PaintedTexture"); rev != 1 {
		t.Errorf("revision = %d, want 1", rev)
	}
	got, _ := m.Texture("PaintedTexture")
	if got.Pixels[0] != 10 {
		t.Errorf("stored pixel = %d, want 10", got.Pixels[0])
	}
}

func TestMaterial_ReleaseTexture(t *testing.T) {
	up := &recordingUploader{}
	m := NewMaterial(WithName("floor"), WithUploader(up))
	if err := m.SetTexture("PaintedTexture", common.NewTextureStagingData(1, 1)); err != nil {
		t.Fatal(err)
	}

	m.ReleaseTexture("PaintedTexture")
	if _, ok := m.Texture("PaintedTexture"); ok {
		t.Error("texture still present after release")
	}
	if len(up.released) != 1 || up.released[0] != "floor/PaintedTexture" {
		t.Errorf("released = %v, want [floor/PaintedTexture]", up.released)
	}

	// CPU-only materials release without an uploader.
	cpu := NewMaterial(WithName("cpu"))
	_ = cpu.SetTexture("PaintedTexture", common.NewTextureStagingData(1, 1))
	cpu.ReleaseTexture("PaintedTexture")
	if _, ok := cpu.Texture("PaintedTexture"); ok {
		t.Error("cpu texture still present after release")
	}
}

func TestMaterial_EmissionColor(t *testing.T) {
	m := NewMaterial(WithEmissionColor([4]float32{0.2, 0.4, 0.6, 1}))
	if e := m.EmissionColor(); e != [4]float32{0.2, 0.4, 0.6, 1} {
		t.Errorf("EmissionColor = %v", e)
	}
}

func TestMaterial_Tiling(t *testing.T) {
	m := NewMaterial(WithTiling(2, 3))
	if x, y := m.Tiling(); x != 2 || y != 3 {
		t.Errorf("Tiling = (%v, %v), want (2, 3)", x, y)
	}
	m.SetTiling(0, 4)
	if x, y := m.Tiling(); x != 1 || y != 4 {
		t.Errorf("Tiling after SetTiling(0, 4) = (%v, %v), want (1, 4)", x, y)
	}
}

func TestMaterial_AsPaintDisplay(t *testing.T) {
	m := NewMaterial(WithName("wall"))
	buf, err := paint.NewPaintBuffer(4, 4, paint.WithDisplay(m))
	if err != nil {
		t.Fatal(err)
	}
	r := paint.NewSurfaceRegistry()
	_ = r.Register(1, buf)
	c := paint.NewCoordinator(r, paint.WithIntensity(1))

	c.ProcessTick([]paint.RayHitRecord{{Surface: 1, U: 0.5, V: 0.5, TilingX: 1, TilingY: 1}})

	tex, ok := m.Texture(paint.DefaultTextureParam)
	if !ok {
		t.Fatal("commit did not reach the material")
	}
	if !bytes.Equal(tex.Pixels, buf.Stage().Pixels) {
		t.Error("material texture differs from the committed buffer")
	}
	if r8, _, _, _ := tex.RGBA(2, 2); r8 != 255 {
		t.Errorf("painted texel red = %d, want 255", r8)
	}
}
