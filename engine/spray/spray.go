package spray

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/Carmen-Shannon/oxy-paint/engine/game_object"
	"github.com/Carmen-Shannon/oxy-paint/engine/paint"
	"github.com/Carmen-Shannon/oxy-paint/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Dispersion defaults, in units of 1/360 of the forward vector's length.
const (
	DefaultRayCount       = 10
	DefaultDispersion     = 150
	DefaultMinDispersion  = 50
	DefaultMaxDispersion  = 300
	DefaultDispersionStep = 10
)

// Target is the scene query the sprayer casts against.
// scene.Scene satisfies it.
type Target interface {
	Raycast(origin, dir mgl32.Vec3, maxDist float32, mask scene.Layer) (scene.RaycastHit, bool)
	Get(id uint64) game_object.GameObject
}

type sprayer struct {
	mu *sync.Mutex

	target  Target
	rng     *rand.Rand
	enabled bool

	rayCount       int
	dispersion     int
	minDispersion  int
	maxDispersion  int
	dispersionStep int
	maxDistance    float32
	mask           scene.Layer
}

// Sprayer casts a beam of jittered probe rays from a viewpoint and turns the hits into paint records.
// Each ray leaves along forward plus a random perpendicular offset whose length is drawn
// uniformly from [0, dispersion/360).
type Sprayer interface {
	// Enabled reports whether the trigger is held.
	Enabled() bool

	// SetEnabled presses or releases the trigger. A released sprayer casts nothing.
	//
	// Parameters:
	//   - enabled: true while spraying
	SetEnabled(enabled bool)

	// RayCount returns the number of rays cast per call.
	RayCount() int

	// Dispersion returns the current spread.
	Dispersion() int

	// SetDispersion sets the spread, clamped to the configured range.
	//
	// Parameters:
	//   - d: the spread in 1/360 units
	SetDispersion(d int)

	// Widen increases the spread by one step.
	Widen()

	// Narrow decreases the spread by one step.
	Narrow()

	// Cast fires RayCount rays and returns one record per ray that struck an object.
	// Hits carry the struck object's current material tiling. Returns nil when disabled.
	//
	// Parameters:
	//   - origin: the eye position
	//   - forward: the view direction
	//
	// Returns:
	//   - []paint.RayHitRecord: the hits in cast order
	Cast(origin, forward mgl32.Vec3) []paint.RayHitRecord
}

var _ Sprayer = &sprayer{}

// NewSprayer creates a Sprayer casting against target. Panics if target is nil.
//
// Parameters:
//   - target: the scene to cast against
//   - options: functional options to configure the sprayer
//
// Returns:
//   - Sprayer: the new sprayer
func NewSprayer(target Target, options ...SprayerBuilderOption) Sprayer {
	if target == nil {
		panic("spray: NewSprayer requires a non-nil Target")
	}

	s := &sprayer{
		mu:             &sync.Mutex{},
		target:         target,
		rayCount:       DefaultRayCount,
		dispersion:     DefaultDispersion,
		minDispersion:  DefaultMinDispersion,
		maxDispersion:  DefaultMaxDispersion,
		dispersionStep: DefaultDispersionStep,
		maxDistance:    float32(math.Inf(1)),
		mask:           scene.LayerPaintable,
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.dispersion = common.Clamp(s.dispersion, s.minDispersion, s.maxDispersion)
	return s
}

func (s *sprayer) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *sprayer) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

func (s *sprayer) RayCount() int {
	return s.rayCount
}

func (s *sprayer) Dispersion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispersion
}

func (s *sprayer) SetDispersion(d int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispersion = common.Clamp(d, s.minDispersion, s.maxDispersion)
}

func (s *sprayer) Widen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispersion = common.Clamp(s.dispersion+s.dispersionStep, s.minDispersion, s.maxDispersion)
}

func (s *sprayer) Narrow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispersion = common.Clamp(s.dispersion-s.dispersionStep, s.minDispersion, s.maxDispersion)
}

func (s *sprayer) Cast(origin, forward mgl32.Vec3) []paint.RayHitRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || forward.Len() == 0 {
		return nil
	}
	forward = forward.Normalize()
	tangent, bitangent := common.OrthonormalBasis(forward)
	spread := float64(s.dispersion) / 360

	var hits []paint.RayHitRecord
	for range s.rayCount {
		angle := s.rng.Float64() * 2 * math.Pi
		radius := float32(s.rng.Float64() * spread)
		offset := tangent.Mul(float32(math.Cos(angle))).Add(bitangent.Mul(float32(math.Sin(angle))))
		dir := forward.Add(offset.Mul(radius))

		hit, ok := s.target.Raycast(origin, dir, s.maxDistance, s.mask)
		if !ok {
			continue
		}
		tx, ty := float32(1), float32(1)
		if obj := s.target.Get(hit.ObjectID); obj != nil {
			if mat := obj.Material(); mat != nil {
				tx, ty = mat.Tiling()
			}
		}
		hits = append(hits, paint.RayHitRecord{
			Surface: paint.SurfaceID(hit.ObjectID),
			U:       hit.U,
			V:       hit.V,
			TilingX: tx,
			TilingY: ty,
		})
	}
	return hits
}
