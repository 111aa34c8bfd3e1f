package scene

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/game_object"
	"github.com/Carmen-Shannon/oxy-paint/engine/paint"
	"github.com/Carmen-Shannon/oxy-paint/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// Layer aliases the game object layer bitmask so scene queries read naturally.
type Layer = game_object.Layer

const (
	LayerDefault   = game_object.LayerDefault
	LayerPaintable = game_object.LayerPaintable
	LayerAll       = game_object.LayerAll
)

// ErrDuplicateObject is returned by Add when an object's preset ID is already in the scene.
var ErrDuplicateObject = errors.New("duplicate object id")

// RaycastHit describes the nearest surface struck by Scene.Raycast.
type RaycastHit struct {
	ObjectID uint64
	// U, V are the texture coordinates of the hit, v = 0 on the top row.
	U, V     float32
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// Scene manages a registry of GameObjects and the paint buffers of its paintable surfaces.
// Every paintable object added to the scene gets a PaintBuffer sized from its scale and the
// scene's texel density, registered under the object's ID and published once to its material.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Config returns the paint configuration used for new surfaces.
	Config() paint.Config

	// Registry returns the SurfaceRegistry holding the scene's paint buffers.
	Registry() paint.SurfaceRegistry

	// Count returns the number of GameObjects in the scene's registry.
	//
	// Returns:
	//   - int: count of GameObjects in the registry
	Count() int

	// Add adds a GameObject to the scene. Objects without an ID are assigned the next free one.
	// Paintable objects get a PaintBuffer and, when they carry no Material, a new Material
	// named "<object name>-<id>". The initial base-color texture is published before Add returns.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the ID of the added object
	//   - error: ErrDuplicateObject, paint.ErrInvalidDimension for a degenerate paintable
	//     surface, paint.ErrDuplicateSurface, or a texture publish failure
	Add(obj game_object.GameObject) (uint64, error)

	// Get returns the GameObject with the given ID, or nil if it is not in the scene.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Objects returns every GameObject in ascending ID order.
	Objects() []game_object.GameObject

	// Remove deletes the object with the given ID, unregisters its paint buffer and releases
	// its painted texture. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Clear removes every object, unregistering its paint buffer and releasing its painted texture.
	Clear()

	// PaintBuffer returns the paint buffer of a paintable object.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - paint.PaintBuffer: the buffer, or nil
	//   - bool: true if the object owns a buffer
	PaintBuffer(id uint64) (paint.PaintBuffer, bool)

	// Raycast finds the nearest enabled object on a layer in mask struck by the ray.
	// Ties at the same distance go to the lower object ID.
	//
	// Parameters:
	//   - origin: the ray origin
	//   - dir: the ray direction, normalized internally
	//   - maxDist: the maximum hit distance
	//   - mask: layers to test
	//
	// Returns:
	//   - RaycastHit: the nearest hit
	//   - bool: false on a miss
	Raycast(origin, dir mgl32.Vec3, maxDist float32, mask Layer) (RaycastHit, bool)
}

type scene struct {
	mu *sync.RWMutex

	name     string
	cfg      paint.Config
	registry map[uint64]game_object.GameObject
	surfaces paint.SurfaceRegistry
	uploader material.TextureUploader
	nextID   uint64

	// objects supplied through WithObjects, added once construction finishes
	pending []game_object.GameObject
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene. Objects passed through WithObjects are added in order and
// NewScene panics if any of them is rejected.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:       &sync.RWMutex{},
		name:     name,
		cfg:      paint.DefaultConfig(),
		registry: make(map[uint64]game_object.GameObject),
		nextID:   1,
	}

	for _, option := range options {
		option(s)
	}
	if s.surfaces == nil {
		s.surfaces = paint.NewSurfaceRegistry()
	}

	pending := s.pending
	s.pending = nil
	for _, obj := range pending {
		if _, err := s.Add(obj); err != nil {
			panic(fmt.Sprintf("scene: failed to add initial object %q: %v", obj.Name(), err))
		}
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Config() paint.Config {
	return s.cfg
}

func (s *scene) Registry() paint.SurfaceRegistry {
	return s.surfaces
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assigned := false
	if obj.ID() == 0 {
		obj.SetID(atomic.AddUint64(&s.nextID, 1) - 1)
		assigned = true
	} else if _, exists := s.registry[obj.ID()]; exists {
		return 0, fmt.Errorf("scene: add %d: %w", obj.ID(), ErrDuplicateObject)
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}

	if obj.Paintable() {
		if err := s.initSurface(obj); err != nil {
			if assigned {
				obj.SetID(0)
			}
			return 0, fmt.Errorf("scene: add %d: %w", obj.ID(), err)
		}
	}

	s.registry[obj.ID()] = obj
	return obj.ID(), nil
}

// initSurface allocates, registers and publishes the paint buffer of a paintable object.
// Caller must hold s.mu write lock.
func (s *scene) initSurface(obj game_object.GameObject) (err error) {
	mat := obj.Material()
	if mat == nil {
		// A rejected object must not keep a material named after an ID it no longer has.
		defer func() {
			if err != nil {
				obj.SetMaterial(nil)
			}
		}()
		// The ID keeps upload labels distinct between same-named objects.
		name := fmt.Sprintf("%s-%d", common.Coalesce(obj.Name(), "surface"), obj.ID())
		mat = material.NewMaterial(material.WithName(name), material.WithUploader(s.uploader))
		obj.SetMaterial(mat)
	} else if mat.Uploader() == nil && s.uploader != nil {
		mat.SetUploader(s.uploader)
	}

	scale := obj.Scale()
	w, h := paint.BufferSize(scale.X(), scale.Y(), s.cfg.TexelDensity)
	buf, err := paint.NewPaintBuffer(w, h, paint.WithConfig(s.cfg), paint.WithDisplay(mat))
	if err != nil {
		return err
	}

	id := paint.SurfaceID(obj.ID())
	if err := s.surfaces.Register(id, buf); err != nil {
		return err
	}

	// A fresh buffer is clean, so Commit would skip it; publish the base texture directly.
	if err := mat.SetTexture(s.cfg.TextureParam, buf.Stage()); err != nil {
		s.surfaces.Unregister(id)
		return fmt.Errorf("publish initial texture: %w", err)
	}

	log.Printf("[Scene] %s: surface %d (%s) %dx%d texels", s.name, obj.ID(), mat.Name(), w, h)
	return nil
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	objs := make([]game_object.GameObject, 0, len(s.registry))
	for _, obj := range s.registry {
		objs = append(objs, obj)
	}
	s.mu.RUnlock()

	slices.SortFunc(objs, func(a, b game_object.GameObject) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		}
		return 0
	})
	return objs
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, exists := s.registry[id]
	if !exists {
		return
	}
	delete(s.registry, id)
	s.releaseSurface(id, obj)
}

// releaseSurface drops the paint buffer and painted texture of a paintable object.
// Caller must hold s.mu write lock.
func (s *scene) releaseSurface(id uint64, obj game_object.GameObject) {
	if !obj.Paintable() {
		return
	}
	s.surfaces.Unregister(paint.SurfaceID(id))
	if mat := obj.Material(); mat != nil {
		mat.ReleaseTexture(s.cfg.TextureParam)
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, obj := range s.registry {
		s.releaseSurface(id, obj)
	}
	s.registry = make(map[uint64]game_object.GameObject)
}

func (s *scene) PaintBuffer(id uint64) (paint.PaintBuffer, bool) {
	return s.surfaces.Lookup(paint.SurfaceID(id))
}

func (s *scene) Raycast(origin, dir mgl32.Vec3, maxDist float32, mask Layer) (RaycastHit, bool) {
	if dir.Len() == 0 || maxDist <= 0 {
		return RaycastHit{}, false
	}
	dir = dir.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var best RaycastHit
	found := false
	for id, obj := range s.registry {
		if !obj.Enabled() || obj.Layer()&mask == 0 {
			continue
		}
		q, ok := newQuadCollider(obj.Transform())
		if !ok {
			continue
		}
		t, u, v, ok := q.hit(origin, dir, 0, maxDist)
		if !ok {
			continue
		}
		if found && (t > best.Distance || (t == best.Distance && id > best.ObjectID)) {
			continue
		}
		best = RaycastHit{
			ObjectID: id,
			U:        u,
			V:        v,
			Point:    origin.Add(dir.Mul(t)),
			Normal:   q.faceNormal(dir),
			Distance: t,
		}
		found = true
	}
	return best, found
}
