package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docfolio/docfolio/internal/core/domain"
	"github.com/docfolio/docfolio/internal/core/ports/driven"
)

// BuildSnapshot assembles a new snapshot from one cycle's raw
// listing. Slug collisions are resolved deterministically within the
// cycle and every record gets its URLs from the normaliser. A bad
// record is skipped, never fatal: partial data degrades the listing,
// not the process.
func BuildSnapshot(docs []domain.RawDocument, normaliser driven.EmbedNormaliser) *domain.Snapshot {
	slugs := domain.NewSlugTable()
	entries := make([]domain.Entry, 0, len(docs))

	for _, doc := range docs {
		if strings.TrimSpace(doc.Locator) == "" {
			continue
		}

		urls := normaliser.Resolve(doc)
		entries = append(entries, domain.Entry{
			Slug:      slugs.Assign(doc.Title),
			Title:     doc.Title,
			SourceURL: urls.SourceURL,
			EmbedURL:  urls.EmbedURL,
		})
	}

	return domain.NewSnapshot(uuid.NewString(), time.Now(), entries)
}
