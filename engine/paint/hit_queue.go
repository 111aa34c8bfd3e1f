package paint

import "sync"

// HitQueue collects hit records from ray sources on any goroutine and hands them to the
// goroutine that owns the paint buffers as a single sequential batch.
type HitQueue struct {
	mu    sync.Mutex
	front []RayHitRecord
	back  []RayHitRecord
}

// NewHitQueue creates a queue with room for capacity records before it grows.
//
// Parameters:
//   - capacity: initial capacity hint
//
// Returns:
//   - *HitQueue: the new queue
func NewHitQueue(capacity int) *HitQueue {
	return &HitQueue{
		front: make([]RayHitRecord, 0, capacity),
		back:  make([]RayHitRecord, 0, capacity),
	}
}

// Push appends hits in order.
func (q *HitQueue) Push(hits ...RayHitRecord) {
	if len(hits) == 0 {
		return
	}
	q.mu.Lock()
	q.front = append(q.front, hits...)
	q.mu.Unlock()
}

// Drain removes and returns every queued record in push order.
// The returned slice is only valid until the next Drain call.
//
// Returns:
//   - []RayHitRecord: the batch, possibly empty
func (q *HitQueue) Drain() []RayHitRecord {
	q.mu.Lock()
	defer q.mu.Unlock()
	batch := q.front
	q.front = q.back[:0]
	q.back = batch
	return batch
}

// Len returns the number of queued records.
func (q *HitQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.front)
}
