package renderer

import (
	"bytes"
	"slices"
	"testing"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/paint"
	"github.com/Carmen-Shannon/oxy-paint/engine/renderer/material"
)

func newNullRenderer(t *testing.T) Renderer {
	t.Helper()
	r, err := NewRenderer(BackendTypeNull)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	t.Cleanup(r.Release)
	return r
}

func TestRenderer_NullUpload(t *testing.T) {
	r := newNullRenderer(t)
	if r.BackendType() != BackendTypeNull {
		t.Fatalf("BackendType = %v, want null", r.BackendType())
	}

	data := common.NewTextureStagingData(2, 2)
	data.Pixels[0] = 9
	if err := r.UploadTexture("wall/PaintedTexture", data); err != nil {
		t.Fatalf("UploadTexture: %v", err)
	}
	if err := r.UploadTexture("wall/PaintedTexture", data); err != nil {
		t.Fatalf("second UploadTexture: %v", err)
	}

	p := r.TextureProvider("wall/PaintedTexture")
	if p == nil {
		t.Fatal("provider missing after upload")
	}
	if p.Uploads() != 2 {
		t.Errorf("Uploads = %d, want 2", p.Uploads())
	}

	snap, ok := r.(*renderer).backend.(*nullRendererBackend).snapshot("wall/PaintedTexture")
	if !ok || !bytes.Equal(snap.Pixels, data.Pixels) {
		t.Error("null backend did not keep the uploaded pixels")
	}
}

func TestRenderer_UploadRejectsInvalidData(t *testing.T) {
	r := newNullRenderer(t)
	err := r.UploadTexture("x", common.TextureStagingData{Width: 2, Height: 2})
	if err == nil {
		t.Fatal("expected error for empty pixels")
	}
	if r.TextureProvider("x") != nil {
		t.Error("rejected upload must not create a provider")
	}
}

func TestRenderer_LabelsAndRelease(t *testing.T) {
	r := newNullRenderer(t)
	for _, label := range []string{"b/PaintedTexture", "a/PaintedTexture"} {
		if err := r.UploadTexture(label, common.NewTextureStagingData(1, 1)); err != nil {
			t.Fatal(err)
		}
	}
	if got := r.TextureLabels(); !slices.Equal(got, []string{"a/PaintedTexture", "b/PaintedTexture"}) {
		t.Errorf("TextureLabels = %v", got)
	}

	r.ReleaseTexture("a/PaintedTexture")
	r.ReleaseTexture("missing")
	if got := r.TextureLabels(); !slices.Equal(got, []string{"b/PaintedTexture"}) {
		t.Errorf("TextureLabels after release = %v", got)
	}
}

func TestRenderer_UnknownBackend(t *testing.T) {
	if _, err := NewRenderer(RendererBackendType(42)); err == nil {
		t.Error("expected error for unknown backend type")
	}
}

func TestRenderer_CommitFlowsToBackend(t *testing.T) {
	r := newNullRenderer(t)
	mat := material.NewMaterial(material.WithName("wall"), material.WithUploader(r))
	buf, err := paint.NewPaintBuffer(4, 4, paint.WithDisplay(mat))
	if err != nil {
		t.Fatal(err)
	}
	if err := buf.WriteTexel(1, 1, paint.DefaultMarkColor); err != nil {
		t.Fatal(err)
	}
	if err := buf.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	p := r.TextureProvider(mat.TextureLabel(paint.DefaultTextureParam))
	if p == nil || p.Uploads() != 1 {
		t.Fatalf("expected one upload through the renderer, provider = %v", p)
	}
}

func TestBackendTypeString(t *testing.T) {
	if BackendTypeWGPU.String() != "wgpu" || BackendTypeNull.String() != "null" {
		t.Error("unexpected backend names")
	}
}
