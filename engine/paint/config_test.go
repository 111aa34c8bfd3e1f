package paint

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Intensity != 0.25 {
		t.Errorf("Intensity = %v, want 0.25", cfg.Intensity)
	}
	if cfg.TexelDensity != 96 {
		t.Errorf("TexelDensity = %v, want 96", cfg.TexelDensity)
	}
	if cfg.BaseColor != black || cfg.MarkColor != white {
		t.Errorf("colors = base %v mark %v, want black/white", cfg.BaseColor, cfg.MarkColor)
	}
	if cfg.TextureParam != "PaintedTexture" {
		t.Errorf("TextureParam = %q, want PaintedTexture", cfg.TextureParam)
	}
}

func TestBufferSize(t *testing.T) {
	tests := []struct {
		name         string
		sx, sy, dens float32
		wantW, wantH int
	}{
		{"unit surface", 1, 1, 96, 96, 96},
		{"half unit", 0.5, 2, 96, 48, 192},
		{"fractional rounds up", 0.01, 0.011, 96, 1, 2},
		{"zero extent", 0, 1, 96, 0, 96},
		{"negative extent", -1, 1, 96, 0, 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := BufferSize(tt.sx, tt.sy, tt.dens)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("BufferSize(%v, %v, %v) = %dx%d, want %dx%d", tt.sx, tt.sy, tt.dens, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestBufferSize_DegenerateSurfaceFailsCreation(t *testing.T) {
	w, h := BufferSize(0, 1, DefaultTexelDensity)
	if _, err := NewPaintBuffer(w, h); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("NewPaintBuffer(%d, %d) error = %v, want ErrInvalidDimension", w, h, err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if !c.AlmostEqualRgb(red) {
		t.Errorf("ParseColor(#ff0000) = %v, want %v", c, red)
	}
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Error("expected error for malformed color")
	}
}
