// Package manifest implements the declarative file document source.
// The manifest is a JSON array of {title, url} records; unknown
// fields are ignored so the file can carry presentation hints for
// other tools.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/docfolio/docfolio/internal/core/domain"
	"github.com/docfolio/docfolio/internal/core/ports/driven"
	"github.com/docfolio/docfolio/internal/logger"
)

// DefaultTitle is used for records without a title.
const DefaultTitle = "Untitled"

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// record is one manifest row. Unknown JSON fields are ignored.
type record struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Source reads the document listing from a manifest file.
type Source struct {
	path string
}

// New creates a manifest source for the given file path.
func New(path string) *Source {
	return &Source{path: path}
}

// Type returns the source type identifier.
func (s *Source) Type() string { return "manifest" }

// Path returns the manifest file path.
func (s *Source) Path() string { return s.path }

// List parses the manifest. A missing file is an empty listing, not
// an error: the operator may not have created it yet. Malformed JSON
// is a source failure so the previous snapshot stays published.
// Records without a URL are skipped; records without a title get
// DefaultTitle.
func (s *Source) List(_ context.Context) ([]domain.RawDocument, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		logger.Debug("manifest: %s does not exist, listing is empty", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read manifest %s: %w", domain.ErrSourceUnavailable, s.path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse manifest %s: %w", domain.ErrSourceUnavailable, s.path, err)
	}

	docs := make([]domain.RawDocument, 0, len(records))
	for _, rec := range records {
		url := strings.TrimSpace(rec.URL)
		if url == "" {
			logger.Debug("manifest: skipping record %q with blank url", rec.Title)
			continue
		}

		title := rec.Title
		if title == "" {
			title = DefaultTitle
		}

		docs = append(docs, domain.RawDocument{
			Title:   title,
			Locator: url,
		})
	}

	return docs, nil
}
