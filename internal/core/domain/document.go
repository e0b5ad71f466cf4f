package domain

import "time"

// RawDocument is one row produced by a document source listing.
// It lives only within a single refresh cycle.
type RawDocument struct {
	// Title is the human-readable document name.
	Title string

	// Locator is either a full URL (declarative sources) or a
	// provider file ID (remote listings).
	Locator string

	// MIMEKind is the provider MIME type for remote listings.
	// Empty for declarative sources, where Locator is a URL.
	MIMEKind string
}

// Entry is a published document in the registry.
// Immutable once constructed.
type Entry struct {
	// Slug is the unique registry key and route segment.
	Slug string

	// Title is the display name.
	Title string

	// SourceURL is the canonical link to the document.
	SourceURL string

	// EmbedURL is the provider preview URL for inline embedding.
	// Empty when the provider has no embeddable form; the caller
	// must link out to SourceURL instead.
	EmbedURL string
}

// Embeddable reports whether the entry can be rendered inline.
func (e Entry) Embeddable() bool {
	return e.EmbedURL != ""
}

// Snapshot is one complete build of the slug registry. It is
// assembled in isolation during a refresh cycle and published as a
// whole; it is never mutated after construction.
type Snapshot struct {
	// CycleID identifies the refresh cycle that built this snapshot.
	CycleID string

	// BuiltAt is when the build completed.
	BuiltAt time.Time

	entries map[string]Entry
	order   []string
}

// NewSnapshot constructs a snapshot from entries in listing order.
// Entries must already have pairwise-unique slugs; a duplicate slug
// is dropped rather than allowed to overwrite an earlier entry.
func NewSnapshot(cycleID string, builtAt time.Time, entries []Entry) *Snapshot {
	s := &Snapshot{
		CycleID: cycleID,
		BuiltAt: builtAt,
		entries: make(map[string]Entry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if _, exists := s.entries[e.Slug]; exists {
			continue
		}
		s.entries[e.Slug] = e
		s.order = append(s.order, e.Slug)
	}
	return s
}

// EmptySnapshot returns a snapshot with no entries. Used as the
// registry's initial state before the first refresh cycle completes.
func EmptySnapshot() *Snapshot {
	return NewSnapshot("", time.Time{}, nil)
}

// Lookup returns the entry for a slug.
func (s *Snapshot) Lookup(slug string) (Entry, bool) {
	e, ok := s.entries[slug]
	return e, ok
}

// Entries returns all entries in listing order. The returned slice
// is a copy; callers cannot mutate the snapshot through it.
func (s *Snapshot) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, s.entries[slug])
	}
	return out
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}
