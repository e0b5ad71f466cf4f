package services

import (
	"sync/atomic"

	"github.com/docfolio/docfolio/internal/core/domain"
	"github.com/docfolio/docfolio/internal/core/ports/driving"
)

// Ensure Registry implements the interface.
var _ driving.RegistryReader = (*Registry)(nil)

// Registry holds the currently published snapshot.
//
// Discipline: single writer (the refresher), many readers (request
// handlers). The snapshot reference is swapped with one atomic store,
// so readers never observe a partially built snapshot and never take
// a lock. A reader that loaded the old snapshot before a publish
// keeps using it for the rest of its request; that is acceptable.
type Registry struct {
	current atomic.Pointer[domain.Snapshot]
}

// NewRegistry creates a registry holding the empty snapshot, so
// reads before the first refresh cycle see "no documents" rather
// than nil.
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(domain.EmptySnapshot())
	return r
}

// Current returns the published snapshot.
func (r *Registry) Current() *domain.Snapshot {
	return r.current.Load()
}

// Lookup returns the entry for a slug in the published snapshot.
func (r *Registry) Lookup(slug string) (domain.Entry, bool) {
	return r.current.Load().Lookup(slug)
}

// Publish atomically replaces the published snapshot. Called only by
// the refresher, once per successful cycle.
func (r *Registry) Publish(snapshot *domain.Snapshot) {
	if snapshot == nil {
		return
	}
	r.current.Store(snapshot)
}
