package authflow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/learnhub/learnhub/internal/pkg/apperrors"
)

type registryEntry struct {
	flow      *PasswordResetFlow
	touchedAt time.Time
}

// Registry holds in-progress password reset flows keyed by an opaque id
// carried in a cookie, so a multi-request sequence can be resumed. Flows
// untouched for longer than the TTL are dropped on the next access.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewRegistry creates a registry whose entries expire after ttl.
func NewRegistry(ttl time.Duration, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		entries: make(map[string]*registryEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Put registers a new flow and returns its id.
func (r *Registry) Put(flow *PasswordResetFlow) string {
	id := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	r.entries[id] = &registryEntry{flow: flow, touchedAt: r.now()}
	return id
}

// Get resumes a flow by id, refreshing its TTL.
func (r *Registry) Get(id string) (*PasswordResetFlow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	entry, exists := r.entries[id]
	if !exists {
		return nil, apperrors.ErrFlowNotFound
	}
	entry.touchedAt = r.now()
	return entry.flow, nil
}

// Remove drops a flow, typically after it completes.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)
}

// Len reports the number of live flows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	return len(r.entries)
}

func (r *Registry) sweepLocked() {
	cutoff := r.now().Add(-r.ttl)
	for id, entry := range r.entries {
		if entry.touchedAt.Before(cutoff) {
			delete(r.entries, id)
		}
	}
}
