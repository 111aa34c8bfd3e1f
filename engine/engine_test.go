package engine

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-paint/engine/camera"
	"github.com/Carmen-Shannon/oxy-paint/engine/game_object"
	"github.com/Carmen-Shannon/oxy-paint/engine/paint"
	"github.com/Carmen-Shannon/oxy-paint/engine/scene"
	"github.com/Carmen-Shannon/oxy-paint/engine/spray"
)

// runWithTimeout runs e until it returns or fails the test after d.
func runWithTimeout(t *testing.T, e Engine, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		e.Quit()
		<-done
		t.Fatal("engine did not finish in time")
	}
}

func paintRoom(t *testing.T) (scene.Scene, game_object.GameObject) {
	t.Helper()
	wall := game_object.NewGameObject(
		game_object.WithName("wall"),
		game_object.WithPaintable(true),
		game_object.WithPosition(0, 0, -2),
		game_object.WithScale(4, 4, 1),
	)
	return scene.NewScene("room", scene.WithTexelDensity(16), scene.WithObjects(wall)), wall
}

func TestEngine_SprayPaintsWall(t *testing.T) {
	sc, wall := paintRoom(t)
	cam := camera.NewCamera()
	sprayer := spray.NewSprayer(sc, spray.WithEnabled(true), spray.WithSeed(11))

	var e Engine
	e = NewEngine(
		WithScene(sc),
		WithCamera(cam),
		WithSprayer(sprayer),
		WithTickRate(500),
		WithCoordinatorOptions(paint.WithIntensity(1)),
	)
	e.SetRenderCallback(func(float32) {
		if e.Coordinator().LastTick().Commits > 0 {
			e.Quit()
		}
	})

	runWithTimeout(t, e, 5*time.Second)

	buf, _ := sc.PaintBuffer(wall.ID())
	if buf.Commits() == 0 {
		t.Fatal("wall was never committed")
	}
	hits, commits := e.Profiler().Totals()
	if hits == 0 || commits == 0 {
		t.Errorf("profiler totals = %d hits, %d commits", hits, commits)
	}
	tex, ok := wall.Material().Texture(paint.DefaultTextureParam)
	if !ok {
		t.Fatal("material has no painted texture")
	}
	white := 0
	for i := 0; i < len(tex.Pixels); i += 4 {
		if tex.Pixels[i] == 0xff {
			white++
		}
	}
	if white == 0 {
		t.Error("published texture has no painted texels")
	}
}

func TestEngine_RequestClear(t *testing.T) {
	sc, wall := paintRoom(t)
	buf, _ := sc.PaintBuffer(wall.ID())
	if err := buf.WriteTexel(3, 3, paint.DefaultMarkColor); err != nil {
		t.Fatal(err)
	}

	var e Engine
	e = NewEngine(WithScene(sc))
	e.RequestClear()
	e.SetRenderCallback(func(float32) { e.Quit() })
	runWithTimeout(t, e, 5*time.Second)

	c, _ := buf.Texel(3, 3)
	if c != paint.DefaultBaseColor {
		t.Errorf("texel after clear = %v, want base color", c)
	}
	if buf.Dirty() || buf.Commits() != 1 {
		t.Errorf("dirty = %v, commits = %d, want clean with one commit", buf.Dirty(), buf.Commits())
	}
}

func TestEngine_QuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	if e.Coordinator() != nil {
		t.Error("engine without a scene should not build a coordinator")
	}
	e.Quit()
	e.Quit()
	runWithTimeout(t, e, time.Second)
}

func TestEngine_TickCallbackRuns(t *testing.T) {
	ticks := make(chan float32, 1)
	e := NewEngine(WithTickRate(1000))
	e.SetTickCallback(func(dt float32) {
		select {
		case ticks <- dt:
		default:
		}
	})
	e.SetRenderFrameLimit(0)

	go func() {
		<-ticks
		e.Quit()
	}()
	runWithTimeout(t, e, 5*time.Second)
}
