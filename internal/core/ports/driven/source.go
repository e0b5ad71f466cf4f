package driven

import (
	"context"

	"github.com/docfolio/docfolio/internal/core/domain"
)

// DocumentSource produces the listing of documents to publish.
// Each source type (Google Drive folder, declarative manifest file)
// implements this interface.
type DocumentSource interface {
	// Type returns the source type identifier, e.g. "drive" or
	// "manifest".
	Type() string

	// List fetches the current document listing. It returns
	// domain.ErrSourceUnavailable (wrapped) on transport or parse
	// failure; callers skip the refresh cycle and keep the previous
	// snapshot. An empty slice with a nil error is a legitimate
	// empty listing and is published as such.
	//
	// Implementations apply their own bounded timeout; List never
	// blocks indefinitely.
	List(ctx context.Context) ([]domain.RawDocument, error)
}
