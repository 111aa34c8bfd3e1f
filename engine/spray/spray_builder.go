package spray

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-paint/engine/scene"
)

// SprayerBuilderOption is a functional option applied to a sprayer during construction via NewSprayer.
type SprayerBuilderOption func(*sprayer)

// WithRayCount sets the number of rays cast per call. Values below 1 are raised to 1.
//
// Parameters:
//   - n: rays per cast
//
// Returns:
//   - SprayerBuilderOption: functional option to set the ray count
func WithRayCount(n int) SprayerBuilderOption {
	return func(s *sprayer) {
		s.rayCount = max(n, 1)
	}
}

// WithDispersion sets the initial spread.
//
// Parameters:
//   - d: the spread in 1/360 units
//
// Returns:
//   - SprayerBuilderOption: functional option to set the dispersion
func WithDispersion(d int) SprayerBuilderOption {
	return func(s *sprayer) {
		s.dispersion = d
	}
}

// WithDispersionRange sets the spread limits and the Widen/Narrow step.
//
// Parameters:
//   - lo: minimum spread
//   - hi: maximum spread
//   - step: change per Widen or Narrow
//
// Returns:
//   - SprayerBuilderOption: functional option to set the dispersion range
func WithDispersionRange(lo, hi, step int) SprayerBuilderOption {
	return func(s *sprayer) {
		if lo > hi {
			lo, hi = hi, lo
		}
		s.minDispersion = max(lo, 0)
		s.maxDispersion = max(hi, 0)
		s.dispersionStep = step
	}
}

// WithMaxDistance limits how far rays travel. Unlimited by default.
//
// Parameters:
//   - d: the maximum hit distance
//
// Returns:
//   - SprayerBuilderOption: functional option to set the max distance
func WithMaxDistance(d float32) SprayerBuilderOption {
	return func(s *sprayer) {
		s.maxDistance = d
	}
}

// WithMask sets the layers rays are tested against. Defaults to scene.LayerPaintable.
// Including other layers lets non-paintable geometry block the spray.
//
// Parameters:
//   - mask: the layer mask
//
// Returns:
//   - SprayerBuilderOption: functional option to set the layer mask
func WithMask(mask scene.Layer) SprayerBuilderOption {
	return func(s *sprayer) {
		s.mask = mask
	}
}

// WithSeed makes the ray jitter deterministic.
//
// Parameters:
//   - seed: the PCG seed
//
// Returns:
//   - SprayerBuilderOption: functional option to seed the random source
func WithSeed(seed uint64) SprayerBuilderOption {
	return func(s *sprayer) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithEnabled sets the initial trigger state.
//
// Parameters:
//   - enabled: true to start spraying
//
// Returns:
//   - SprayerBuilderOption: functional option to set the trigger state
func WithEnabled(enabled bool) SprayerBuilderOption {
	return func(s *sprayer) {
		s.enabled = enabled
	}
}
