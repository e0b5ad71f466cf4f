package driving

import (
	"context"

	"github.com/docfolio/docfolio/internal/core/domain"
)

// RegistryReader is the read interface consumed by the web surface.
// Reads are lock-free and always observe one complete snapshot;
// a request started before a publish may keep reading the snapshot
// it started with.
type RegistryReader interface {
	// Current returns the currently published snapshot. Never nil:
	// before the first refresh cycle it is the empty snapshot.
	Current() *domain.Snapshot

	// Lookup returns the entry for a slug in the current snapshot.
	Lookup(slug string) (domain.Entry, bool)
}

// Refresher drives the periodic rebuild of the registry.
type Refresher interface {
	// Start runs the refresh loop until Stop is called or the
	// context is cancelled. Blocks; run it in its own goroutine.
	Start(ctx context.Context) error

	// Stop shuts the loop down gracefully, waiting for an in-flight
	// cycle to finish.
	Stop() error

	// RefreshNow performs one synchronous refresh cycle outside the
	// timer, e.g. at startup or when the manifest file changes.
	RefreshNow(ctx context.Context)
}
