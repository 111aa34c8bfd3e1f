package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// Layer is a bitmask used to filter scene queries.
type Layer uint32

const (
	// LayerDefault is the layer every object starts on.
	LayerDefault Layer = 1 << iota

	// LayerPaintable marks objects that accept paint.
	LayerPaintable

	// LayerAll matches every layer.
	LayerAll Layer = ^Layer(0)
)

type gameObject struct {
	mu *sync.RWMutex

	id        uint64
	name      string
	enabled   atomic.Bool
	paintable bool
	layer     Layer
	mat       material.Material

	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
}

// GameObject defines the interface for a scene entity.
// Every object is a unit quad in its local XY plane, centered on the origin and facing +Z.
// Position, rotation (radians, applied Y then X then Z) and scale place it in the world.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID, 0 until assigned by a Scene
	ID() uint64

	// Name returns the object's human-readable name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether this object takes part in scene queries.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Paintable returns whether the object owns a paint buffer once added to a scene.
	//
	// Returns:
	//   - bool: true if paintable
	Paintable() bool

	// Layer returns the layer bits of the object. Paintable objects always include LayerPaintable.
	//
	// Returns:
	//   - Layer: the layer bitmask
	Layer() Layer

	// Material returns the Material displaying this object, or nil if none is set.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// Position returns the world position of the quad center.
	Position() mgl32.Vec3

	// Rotation returns the Euler rotation in radians.
	Rotation() mgl32.Vec3

	// Scale returns the world extent of the quad along its local axes. Z is unused by the collider.
	Scale() mgl32.Vec3

	// Transform returns the model matrix built from position, rotation and scale.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	Transform() mgl32.Mat4

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object takes part in scene queries.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetMaterial assigns the Material for this object.
	//
	// Parameters:
	//   - m: the Material to associate
	SetMaterial(m material.Material)

	// SetPosition moves the object.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// SetScale resizes the object. The paint buffer of a paintable object keeps the size it was created with.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects start enabled on LayerDefault with unit scale.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:    &sync.RWMutex{},
		layer: LayerDefault,
		scale: mgl32.Vec3{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	if obj.paintable {
		obj.layer |= LayerPaintable
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Paintable() bool {
	return g.paintable
}

func (g *gameObject) Layer() Layer {
	return g.layer
}

func (g *gameObject) Material() material.Material {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mat
}

func (g *gameObject) Position() mgl32.Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.position
}

func (g *gameObject) Rotation() mgl32.Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rotation
}

func (g *gameObject) Scale() mgl32.Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.scale
}

func (g *gameObject) Transform() mgl32.Mat4 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return common.ModelMatrix(g.position, g.rotation, g.scale)
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetMaterial(m material.Material) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mat = m
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = mgl32.Vec3{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = mgl32.Vec3{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = mgl32.Vec3{sx, sy, sz}
}
