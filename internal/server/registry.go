package server

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

// entry holds the latest snapshot published by a connection's session loop.
type entry struct {
	latest atomic.Pointer[engine.Snapshot]
}

// Registry indexes live sessions for the read-only HTTP endpoints. Only the
// owning connection writes an entry.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*entry)}
}

func (r *Registry) add(id uuid.UUID) *entry {
	e := &entry{}
	r.mu.Lock()
	r.sessions[id] = e
	r.mu.Unlock()
	return e
}

func (r *Registry) remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Get returns the last published snapshot of a session.
func (r *Registry) Get(id uuid.UUID) (engine.Snapshot, bool) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return engine.Snapshot{}, false
	}
	sn := e.latest.Load()
	if sn == nil {
		return engine.Snapshot{}, false
	}
	return *sn, true
}

// List returns every published session ordered by id.
func (r *Registry) List() []SessionInfo {
	r.mu.RLock()
	out := make([]SessionInfo, 0, len(r.sessions))
	for id, e := range r.sessions {
		sn := e.latest.Load()
		if sn == nil {
			continue
		}
		out = append(out, SessionInfo{
			ID:           id.String(),
			Level:        sn.Level,
			State:        sn.State,
			Score:        sn.Score,
			Extinguished: sn.Extinguished,
			Health:       sn.Health,
		})
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
