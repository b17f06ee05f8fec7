// Package debuglog keeps a bounded history of recent API calls for the
// dev-mode panel.
package debuglog

import (
	"sync"

	"canopy/internal/domain"
)

// DefaultCapacity is the number of call records retained
const DefaultCapacity = 50

// Ring is a fixed-capacity, newest-first log of API call records. Oldest
// entries are evicted past capacity.
type Ring struct {
	mu       sync.Mutex
	capacity int
	entries  []domain.APICallRecord
}

// NewRing creates a ring with the given capacity; non-positive values fall
// back to DefaultCapacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{capacity: capacity}
}

// Record prepends an entry, evicting from the tail past capacity
func (r *Ring) Record(entry domain.APICallRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]domain.APICallRecord{entry}, r.entries...)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[:r.capacity]
	}
}

// Entries returns a snapshot copy, newest first. Mutating the returned slice
// does not affect the ring.
func (r *Ring) Entries() []domain.APICallRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]domain.APICallRecord, len(r.entries))
	copy(snapshot, r.entries)
	return snapshot
}

// Clear empties the ring
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}

// Len returns the current number of entries
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
