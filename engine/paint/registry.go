package paint

import (
	"fmt"
	"slices"
	"sync"
)

// surfaceRegistry is the implementation of the SurfaceRegistry interface.
type surfaceRegistry struct {
	mu      *sync.RWMutex
	buffers map[SurfaceID]PaintBuffer
}

// SurfaceRegistry maps surface identifiers, as reported by intersection queries, to the
// paint buffer each surface owns. Entries are created once per surface at scene load.
// Thread-safe for concurrent access.
type SurfaceRegistry interface {
	// Register associates id with buf.
	//
	// Parameters:
	//   - id: the surface identifier
	//   - buf: the surface's paint buffer
	//
	// Returns:
	//   - error: ErrDuplicateSurface if id is already registered
	Register(id SurfaceID, buf PaintBuffer) error

	// Lookup returns the buffer registered for id. A miss is a normal outcome, rays
	// routinely strike geometry that cannot be painted.
	//
	// Parameters:
	//   - id: the surface identifier
	//
	// Returns:
	//   - PaintBuffer: the registered buffer, or nil
	//   - bool: true if id is registered
	Lookup(id SurfaceID) (PaintBuffer, bool)

	// Unregister removes id. Unknown ids are ignored.
	//
	// Parameters:
	//   - id: the surface identifier
	Unregister(id SurfaceID)

	// Len returns the number of registered surfaces.
	Len() int

	// IDs returns all registered identifiers in ascending order.
	IDs() []SurfaceID
}

var _ SurfaceRegistry = &surfaceRegistry{}

// NewSurfaceRegistry creates an empty SurfaceRegistry.
//
// Returns:
//   - SurfaceRegistry: the new registry
func NewSurfaceRegistry() SurfaceRegistry {
	return &surfaceRegistry{
		mu:      &sync.RWMutex{},
		buffers: make(map[SurfaceID]PaintBuffer),
	}
}

func (r *surfaceRegistry) Register(id SurfaceID, buf PaintBuffer) error {
	if buf == nil {
		return fmt.Errorf("register surface %d: nil buffer", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.buffers[id]; ok {
		return fmt.Errorf("register surface %d: %w", id, ErrDuplicateSurface)
	}
	r.buffers[id] = buf
	return nil
}

func (r *surfaceRegistry) Lookup(id SurfaceID) (PaintBuffer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	buf, ok := r.buffers[id]
	return buf, ok
}

func (r *surfaceRegistry) Unregister(id SurfaceID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.buffers, id)
}

func (r *surfaceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buffers)
}

func (r *surfaceRegistry) IDs() []SurfaceID {
	r.mu.RLock()
	ids := make([]SurfaceID, 0, len(r.buffers))
	for id := range r.buffers {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}
