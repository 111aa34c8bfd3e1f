package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/camera"
	"github.com/Carmen-Shannon/oxy-paint/engine/paint"
	"github.com/Carmen-Shannon/oxy-paint/engine/profiler"
	"github.com/Carmen-Shannon/oxy-paint/engine/scene"
	"github.com/Carmen-Shannon/oxy-paint/engine/spray"
	"github.com/Carmen-Shannon/oxy-paint/engine/window"
)

// engine implements the Engine interface.
// Coordinates the tick, render and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	scene              scene.Scene
	cam                camera.Camera
	sprayer            spray.Sprayer
	coordinator        paint.Coordinator
	coordinatorOptions []paint.CoordinatorBuilderOption
	hits               *paint.HitQueue
	clearRequested     atomic.Bool
}

// Engine is the main entry point for the engine.
// The tick goroutine advances the camera and fires the sprayer, pushing hits into a HitQueue.
// The render goroutine drains the queue once per frame into the paint Coordinator, so every
// texture publish happens on the render goroutine.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the painted scene.
	Scene() scene.Scene

	// Camera returns the viewpoint the sprayer fires from.
	Camera() camera.Camera

	// Sprayer returns the ray source.
	Sprayer() spray.Sprayer

	// Coordinator returns the paint coordinator. Nil without a scene.
	// Only read its state from the render callback.
	Coordinator() paint.Coordinator

	// HitQueue returns the queue between the tick and render goroutines.
	HitQueue() *paint.HitQueue

	// Profiler returns the profiler. Only read it from the render callback or after Run returns.
	Profiler() *profiler.Profiler

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	// The tick callback, camera and sprayer are advanced at this rate.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick before the camera and sprayer run.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame after the paint tick.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop.
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// RequestClear resets every painted surface to its base color on the next render frame.
	RequestClear()

	// Run starts the engine goroutines and blocks until the window closes or Quit is called.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// When a scene is supplied the engine builds a paint Coordinator over its SurfaceRegistry.
// When a window is supplied its input drives the camera and sprayer: WASD/QE move, left
// mouse sprays, scroll changes the spread and C clears the paint.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(time.Second),
		engineTickRate:   time.Second / 60,
		renderFrameLimit: time.Second / 240,
		hits:             paint.NewHitQueue(64),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.scene != nil && e.coordinator == nil {
		e.coordinator = paint.NewCoordinator(e.scene.Registry(), e.coordinatorOptions...)
	}
	if e.window != nil {
		e.bindInput()
	}

	return e
}

// bindInput routes window events to the camera and sprayer.
func (e *engine) bindInput() {
	e.window.SetResizeCallback(func(width, height int) {
		if e.cam != nil && height > 0 {
			e.cam.SetAspect(float32(width) / float32(height))
		}
	})
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == common.KeyC {
			e.RequestClear()
			return
		}
		if e.cam != nil {
			e.cam.SetKey(int(keyCode), true)
		}
	})
	e.window.SetKeyUpCallback(func(keyCode uint32) {
		if e.cam != nil {
			e.cam.SetKey(int(keyCode), false)
		}
	})
	e.window.SetMouseMoveCallback(func(dx, dy float64) {
		if e.cam != nil {
			e.cam.AddMouseDelta(dx, dy)
		}
	})
	e.window.SetMouseButtonCallback(func(button window.MouseButton, pressed bool) {
		if e.sprayer != nil && button == window.MouseButtonLeft {
			e.sprayer.SetEnabled(pressed)
		}
	})
	e.window.SetScrollCallback(func(delta float32) {
		if e.sprayer == nil {
			return
		}
		switch {
		case delta > 0:
			e.sprayer.Widen()
		case delta < 0:
			e.sprayer.Narrow()
		}
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Camera() camera.Camera {
	return e.cam
}

func (e *engine) Sprayer() spray.Sprayer {
	return e.sprayer
}

func (e *engine) Coordinator() paint.Coordinator {
	return e.coordinator
}

func (e *engine) HitQueue() *paint.HitQueue {
	return e.hits
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) Run() {
	e.running.Store(true)
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
	e.running.Store(false)
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handle launches the engine, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Each tick runs the tick callback, advances the camera and queues the sprayer's hits.
// Listens for dynamic rate changes via tickRateChannel and exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
			if e.cam == nil {
				continue
			}
			e.cam.Update(dt)
			if e.sprayer != nil {
				if hits := e.sprayer.Cast(e.cam.Position(), e.cam.Forward()); len(hits) > 0 {
					e.hits.Push(hits...)
				}
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleRender runs the frame-limited render loop in its own goroutine.
// Each frame applies a pending clear, drains the hit queue into the coordinator and runs the
// render callback. Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.clearRequested.Swap(false) {
				e.clearSurfaces()
			}

			if e.coordinator != nil {
				e.coordinator.ProcessTick(e.hits.Drain())
				stats := e.coordinator.LastTick()
				e.profiler.RecordPaint(stats.Hits, stats.Commits)
			}

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}

			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// clearSurfaces resets and republishes every registered paint buffer.
// Runs on the render goroutine alongside ProcessTick.
func (e *engine) clearSurfaces() {
	if e.scene == nil {
		return
	}
	reg := e.scene.Registry()
	for _, id := range reg.IDs() {
		buf, ok := reg.Lookup(id)
		if !ok {
			continue
		}
		buf.Clear()
		if err := buf.Commit(); err != nil {
			log.Printf("[Engine] clear surface %d: %v", id, err)
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}

	// Non-blocking send; replace a pending value if one is queued.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) RequestClear() {
	e.clearRequested.Store(true)
}
