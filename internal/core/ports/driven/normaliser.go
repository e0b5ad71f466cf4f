package driven

import "github.com/docfolio/docfolio/internal/core/domain"

// ResolvedURLs is the outcome of embed normalisation for one raw
// document. EmbedURL is empty when the provider has no embeddable
// preview form; the document is then linked out via SourceURL.
type ResolvedURLs struct {
	SourceURL string
	EmbedURL  string
}

// EmbedNormaliser rewrites a raw document's locator into its
// canonical link and, where the provider supports one, an embeddable
// preview URL. Implementations are pure functions of their input:
// no network access, no state, and idempotent on already-normalised
// URLs.
type EmbedNormaliser interface {
	Resolve(doc domain.RawDocument) ResolvedURLs
}
