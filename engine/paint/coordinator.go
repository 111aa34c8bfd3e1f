package paint

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/lucasb-eyer/go-colorful"
)

// TickStats summarizes one ProcessTick call.
type TickStats struct {
	// Hits is the number of records in the batch.
	Hits int
	// Skipped counts records whose surface is not registered.
	Skipped int
	// Dropped counts records whose write failed.
	Dropped int
	// Writes counts texel writes applied.
	Writes int
	// Commits counts buffers published at the end of the tick.
	Commits int
	// CommitErrors counts buffers whose commit failed.
	CommitErrors int
}

// coordinator is the implementation of the Coordinator interface.
type coordinator struct {
	registry  SurfaceRegistry
	markColor colorful.Color
	intensity float64
	logger    *slog.Logger

	// touched is the set of surfaces written during the current tick; touchedIDs is
	// reused each tick to order commits deterministically.
	touched    map[SurfaceID]struct{}
	touchedIDs []SurfaceID
	commitBufs []PaintBuffer

	// commitPool stages RGBA pixels for several touched buffers in parallel. Each task owns
	// exactly one buffer; publishing stays on the ProcessTick goroutine.
	commitPool    worker.DynamicWorkerPool
	commitWorkers int

	last TickStats
}

// Coordinator runs the per-tick paint protocol: route every hit to its surface's buffer,
// write the blended mark at the mapped texel, then commit each touched buffer exactly once.
//
// ProcessTick is synchronous and must be called from the goroutine that owns the display
// resources. Hits produced elsewhere are funneled through a HitQueue.
type Coordinator interface {
	// ProcessTick applies a batch of hit records and commits every buffer they touched.
	// Unregistered surfaces are skipped and failed writes are dropped per record; the tick
	// always completes and always performs its commits.
	//
	// Parameters:
	//   - hits: the tick's hit records, applied in order
	ProcessTick(hits []RayHitRecord)

	// LastTick returns the statistics of the most recent ProcessTick call.
	//
	// Returns:
	//   - TickStats: counts for the last tick
	LastTick() TickStats

	// Touched returns the surfaces pending commit. Outside ProcessTick this is always empty.
	//
	// Returns:
	//   - []SurfaceID: pending surface ids in ascending order
	Touched() []SurfaceID

	// Registry returns the registry hits are routed through.
	Registry() SurfaceRegistry

	// MarkColor returns the color hits blend toward.
	MarkColor() colorful.Color

	// SetMarkColor changes the color hits blend toward.
	//
	// Parameters:
	//   - c: the new mark color
	SetMarkColor(c colorful.Color)

	// Intensity returns the blend weight applied per write.
	Intensity() float64

	// SetIntensity changes the blend weight, clamped to [0, 1].
	//
	// Parameters:
	//   - intensity: the new blend weight
	SetIntensity(intensity float64)
}

var _ Coordinator = &coordinator{}

// NewCoordinator creates a Coordinator routing hits through registry.
// Panics if registry is nil.
//
// Parameters:
//   - registry: the surface registry to look buffers up in
//   - options: functional options to configure the coordinator
//
// Returns:
//   - Coordinator: the new coordinator
func NewCoordinator(registry SurfaceRegistry, options ...CoordinatorBuilderOption) Coordinator {
	if registry == nil {
		panic("paint: NewCoordinator requires a non-nil SurfaceRegistry")
	}

	c := &coordinator{
		registry:  registry,
		markColor: DefaultMarkColor,
		intensity: DefaultIntensity,
		touched:   make(map[SurfaceID]struct{}),
	}
	for _, opt := range options {
		opt(c)
	}

	if c.commitWorkers > 1 {
		c.commitPool = worker.NewDynamicWorkerPool(c.commitWorkers, 64, 1*time.Second)
	}
	return c
}

func (c *coordinator) ProcessTick(hits []RayHitRecord) {
	log := c.log()
	stats := TickStats{Hits: len(hits)}

	for i := range hits {
		h := hits[i]
		buf, ok := c.registry.Lookup(h.Surface)
		if !ok {
			stats.Skipped++
			log.Debug("paint: hit on unregistered surface", "surface", h.Surface)
			continue
		}

		x, y := MapHit(h, buf.Width(), buf.Height())
		if err := c.mark(buf, x, y); err != nil {
			stats.Dropped++
			log.Warn("paint: dropped hit", "surface", h.Surface, "x", x, "y", y, "err", err)
			continue
		}
		stats.Writes++
		c.touched[h.Surface] = struct{}{}
	}

	c.commitTouched(&stats)
	c.last = stats
	if stats.Hits > 0 {
		log.Debug("paint: tick", "hits", stats.Hits, "writes", stats.Writes, "skipped", stats.Skipped, "commits", stats.Commits)
	}
}

// mark blends the mark color into the texel at (x, y).
func (c *coordinator) mark(buf PaintBuffer, x, y int) error {
	if c.intensity >= 1 {
		return buf.WriteTexel(x, y, c.markColor)
	}
	old, err := buf.Texel(x, y)
	if err != nil {
		return err
	}
	return buf.WriteTexel(x, y, old.BlendRgb(c.markColor, c.intensity))
}

// commitTouched publishes every touched buffer once, in ascending surface order, and
// empties the touched set.
func (c *coordinator) commitTouched(stats *TickStats) {
	if len(c.touched) == 0 {
		return
	}

	c.touchedIDs = c.touchedIDs[:0]
	for id := range c.touched {
		c.touchedIDs = append(c.touchedIDs, id)
	}
	slices.Sort(c.touchedIDs)

	// Surfaces unregistered mid-tick are dropped so touchedIDs[i] always owns commitBufs[i].
	ids := c.touchedIDs[:0]
	c.commitBufs = c.commitBufs[:0]
	for _, id := range c.touchedIDs {
		if buf, ok := c.registry.Lookup(id); ok {
			ids = append(ids, id)
			c.commitBufs = append(c.commitBufs, buf)
		}
	}
	c.touchedIDs = ids

	if c.commitPool != nil && len(c.commitBufs) > 1 {
		c.stageParallel(c.commitBufs)
	}

	for i, buf := range c.commitBufs {
		if err := buf.Commit(); err != nil {
			stats.CommitErrors++
			c.log().Warn("paint: commit failed", "surface", c.touchedIDs[i], "err", err)
			continue
		}
		stats.Commits++
	}

	clear(c.touched)
	clear(c.commitBufs)
}

// stageParallel packs RGBA staging data for each buffer on the commit pool and waits for all of them.
func (c *coordinator) stageParallel(bufs []PaintBuffer) {
	var wg sync.WaitGroup
	for i, buf := range bufs {
		wg.Add(1)
		b := buf
		c.commitPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				b.Stage()
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (c *coordinator) LastTick() TickStats {
	return c.last
}

func (c *coordinator) Touched() []SurfaceID {
	ids := make([]SurfaceID, 0, len(c.touched))
	for id := range c.touched {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (c *coordinator) Registry() SurfaceRegistry {
	return c.registry
}

func (c *coordinator) MarkColor() colorful.Color {
	return c.markColor
}

func (c *coordinator) SetMarkColor(col colorful.Color) {
	c.markColor = col
}

func (c *coordinator) Intensity() float64 {
	return c.intensity
}

func (c *coordinator) SetIntensity(intensity float64) {
	c.intensity = clampIntensity(intensity)
}

func (c *coordinator) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

func clampIntensity(v float64) float64 {
	if !(v >= 0) {
		return 0
	}
	return min(v, 1)
}
