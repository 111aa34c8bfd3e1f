package paint

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
	red   = colorful.Color{R: 1}
)

func TestNewPaintBuffer_InvalidDimension(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewPaintBuffer(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimension) {
				t.Fatalf("NewPaintBuffer(%d, %d) error = %v, want ErrInvalidDimension", tt.width, tt.height, err)
			}
			if buf != nil {
				t.Errorf("expected nil buffer on error, got %v", buf)
			}
		})
	}
}

func TestNewPaintBuffer_FilledWithBaseColor(t *testing.T) {
	base := colorful.Color{R: 0.2, G: 0.4, B: 0.6}
	buf, err := NewPaintBuffer(8, 5, WithBaseColor(base))
	if err != nil {
		t.Fatalf("NewPaintBuffer: %v", err)
	}

	if buf.Width() != 8 || buf.Height() != 5 {
		t.Fatalf("dimensions = %dx%d, want 8x5", buf.Width(), buf.Height())
	}
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c, err := buf.Texel(x, y)
			if err != nil {
				t.Fatalf("Texel(%d, %d): %v", x, y, err)
			}
			if c != base {
				t.Fatalf("Texel(%d, %d) = %v, want base %v", x, y, c, base)
			}
		}
	}
	if buf.Dirty() {
		t.Error("fresh buffer should not be dirty")
	}
}

func TestPaintBuffer_DefaultBaseIsBlack(t *testing.T) {
	buf, err := NewPaintBuffer(2, 2)
	if err != nil {
		t.Fatalf("NewPaintBuffer: %v", err)
	}
	if buf.BaseColor() != black {
		t.Errorf("BaseColor = %v, want black", buf.BaseColor())
	}
}

func TestPaintBuffer_WriteTexelOutOfBounds(t *testing.T) {
	buf, _ := NewPaintBuffer(4, 4)

	coords := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, c := range coords {
		if err := buf.WriteTexel(c[0], c[1], white); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("WriteTexel(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if _, err := buf.Texel(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Texel(%d, %d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if buf.Dirty() {
		t.Error("failed writes must not dirty the buffer")
	}
}

func TestPaintBuffer_LastWriteWins(t *testing.T) {
	buf, _ := NewPaintBuffer(4, 4)

	if err := buf.WriteTexel(1, 2, white); err != nil {
		t.Fatal(err)
	}
	if err := buf.WriteTexel(1, 2, red); err != nil {
		t.Fatal(err)
	}

	got, _ := buf.Texel(1, 2)
	if got != red {
		t.Errorf("Texel(1, 2) = %v, want last write %v", got, red)
	}
	if buf.Generation() != 2 {
		t.Errorf("Generation = %d, want 2", buf.Generation())
	}
}

func TestPaintBuffer_CommitFreshBufferIsNoop(t *testing.T) {
	display := newFakeDisplay()
	buf, _ := NewPaintBuffer(4, 4, WithDisplay(display))

	if err := buf.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if display.publishes() != 0 {
		t.Errorf("fresh commit published %d times, want 0", display.publishes())
	}
	if buf.Commits() != 0 {
		t.Errorf("Commits = %d, want 0", buf.Commits())
	}
}

func TestPaintBuffer_CommitPublishesAndClearsDirty(t *testing.T) {
	display := newFakeDisplay()
	buf, _ := NewPaintBuffer(2, 2, WithDisplay(display))

	if err := buf.WriteTexel(1, 0, white); err != nil {
		t.Fatal(err)
	}
	if !buf.Dirty() {
		t.Fatal("buffer should be dirty after a write")
	}
	if err := buf.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if buf.Dirty() {
		t.Error("buffer should be clean after commit")
	}
	if display.publishes() != 1 {
		t.Fatalf("published %d times, want 1", display.publishes())
	}
	if display.names[0] != DefaultTextureParam {
		t.Errorf("published under %q, want %q", display.names[0], DefaultTextureParam)
	}

	want := []byte{
		0, 0, 0, 255, 255, 255, 255, 255,
		0, 0, 0, 255, 0, 0, 0, 255,
	}
	if !bytes.Equal(display.frames[0], want) {
		t.Errorf("published pixels = %v, want %v", display.frames[0], want)
	}
}

func TestPaintBuffer_CommitTwiceIsIdempotent(t *testing.T) {
	display := newFakeDisplay()
	buf, _ := NewPaintBuffer(3, 3, WithDisplay(display))
	_ = buf.WriteTexel(0, 0, red)

	if err := buf.Commit(); err != nil {
		t.Fatal(err)
	}
	first := buf.Stage().Pixels
	firstCopy := append([]byte(nil), first...)

	if err := buf.Commit(); err != nil {
		t.Fatal(err)
	}
	if display.publishes() != 1 {
		t.Errorf("second commit published again: %d publishes", display.publishes())
	}
	if !bytes.Equal(buf.Stage().Pixels, firstCopy) {
		t.Error("published content changed between identical commits")
	}
	if buf.Commits() != 1 {
		t.Errorf("Commits = %d, want 1", buf.Commits())
	}
}

func TestPaintBuffer_CommitFailureKeepsDirty(t *testing.T) {
	display := newFakeDisplay()
	display.failNext = true
	buf, _ := NewPaintBuffer(2, 2, WithDisplay(display))
	_ = buf.WriteTexel(0, 0, white)

	if err := buf.Commit(); err == nil {
		t.Fatal("expected commit error")
	}
	if !buf.Dirty() {
		t.Error("buffer must stay dirty after a failed commit")
	}

	if err := buf.Commit(); err != nil {
		t.Fatalf("retry commit: %v", err)
	}
	if buf.Dirty() || display.publishes() != 1 {
		t.Errorf("retry: dirty=%v publishes=%d, want clean with 1 publish", buf.Dirty(), display.publishes())
	}
}

func TestPaintBuffer_CommitWithoutDisplay(t *testing.T) {
	buf, _ := NewPaintBuffer(2, 2)
	_ = buf.WriteTexel(0, 0, white)

	if err := buf.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if buf.Dirty() {
		t.Error("headless commit should still clear dirty")
	}
	if buf.CommittedGeneration() != buf.Generation() {
		t.Errorf("CommittedGeneration = %d, want %d", buf.CommittedGeneration(), buf.Generation())
	}
}

func TestPaintBuffer_CustomTextureParam(t *testing.T) {
	display := newFakeDisplay()
	buf, _ := NewPaintBuffer(1, 1, WithDisplay(display), WithTextureParam("Decals"))
	_ = buf.WriteTexel(0, 0, white)
	_ = buf.Commit()

	if len(display.names) != 1 || display.names[0] != "Decals" {
		t.Errorf("published names = %v, want [Decals]", display.names)
	}
}

func TestPaintBuffer_Clear(t *testing.T) {
	buf, _ := NewPaintBuffer(2, 2, WithBaseColor(red))
	_ = buf.WriteTexel(1, 1, white)
	_ = buf.Commit()

	buf.Clear()
	if !buf.Dirty() {
		t.Error("Clear should mark the buffer dirty")
	}
	got, _ := buf.Texel(1, 1)
	if got != red {
		t.Errorf("after Clear texel = %v, want base %v", got, red)
	}
}

func TestPaintBuffer_StageClampsOutOfGamut(t *testing.T) {
	buf, _ := NewPaintBuffer(1, 1)
	_ = buf.WriteTexel(0, 0, colorful.Color{R: 2, G: -1, B: 0.5})

	r, g, b, a := buf.Stage().RGBA(0, 0)
	if r != 255 || g != 0 || b != 128 || a != 255 {
		t.Errorf("staged = (%d, %d, %d, %d), want (255, 0, 128, 255)", r, g, b, a)
	}
}

func TestPaintBuffer_StageIsCachedPerGeneration(t *testing.T) {
	buf, _ := NewPaintBuffer(2, 1)
	first := buf.Stage()
	second := buf.Stage()
	if &first.Pixels[0] != &second.Pixels[0] {
		t.Error("Stage should reuse staging memory")
	}

	_ = buf.WriteTexel(1, 0, white)
	if r, _, _, _ := buf.Stage().RGBA(1, 0); r != 255 {
		t.Errorf("restaged red = %d, want 255", r)
	}
}
