package assembly

import (
	"sync"

	"github.com/google/uuid"
)

// Registry hands out one assembly session per user. Sessions are
// in-memory only; a restart simply starts everyone with an empty
// selection, which is harmless.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	copier   ItemCopier
	store    Store
}

// NewRegistry creates a Registry backed by the given copier and store.
func NewRegistry(copier ItemCopier, store Store) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		copier:   copier,
		store:    store,
	}
}

// ForUser returns the user's session, creating it on first use.
func (r *Registry) ForUser(userID uuid.UUID) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		return s
	}
	s := NewSession(userID, r.copier, r.store)
	r.sessions[userID] = s
	return s
}
