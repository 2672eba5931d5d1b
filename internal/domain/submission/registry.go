package submission

import (
	"sync"

	"github.com/google/uuid"
)

// Registry tracks outcomes per submission attempt. Each attempt owns its own
// tracker, so concurrent submissions never interact. Entries live for the
// process lifetime; attempts are rare and small.
type Registry struct {
	mu       sync.RWMutex
	trackers map[uuid.UUID]*Tracker
}

func NewRegistry() *Registry {
	return &Registry{trackers: make(map[uuid.UUID]*Tracker)}
}

// Open allocates a fresh tracker under a new attempt ID.
func (r *Registry) Open() (uuid.UUID, *Tracker) {
	id := uuid.New()
	t := NewTracker()
	r.mu.Lock()
	r.trackers[id] = t
	r.mu.Unlock()
	return id, t
}

func (r *Registry) Find(id uuid.UUID) (*Tracker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.trackers[id]
	return t, ok
}
