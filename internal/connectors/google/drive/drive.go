// Package drive implements the remote listing document source backed
// by the Google Drive API. One read-only files.list query per refresh
// cycle, scoped to a single folder and filtered to non-trashed items.
package drive

import (
	"context"
	"fmt"
	"strings"
	"time"

	drivev3 "google.golang.org/api/drive/v3"

	"github.com/docfolio/docfolio/internal/connectors/google"
	"github.com/docfolio/docfolio/internal/core/domain"
	"github.com/docfolio/docfolio/internal/core/ports/driven"
)

// MimeTypeFolder marks sub-folders in listing results; they are
// skipped rather than published.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// listFields is the only metadata the registry needs per item.
const listFields = "nextPageToken, files(id, name, mimeType)"

// DefaultTimeout bounds one full listing, pagination included.
const DefaultTimeout = 30 * time.Second

// DefaultPageSize is the files.list page size.
const DefaultPageSize = 100

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source lists the contents of one Drive folder.
type Source struct {
	folderID string
	limiter  *google.RateLimiter
	timeout  time.Duration
	pageSize int64

	// listPage issues one files.list call. Swappable in tests.
	listPage func(ctx context.Context, pageToken string) (*drivev3.FileList, error)
}

// Option customises a Source.
type Option func(*Source)

// WithTimeout overrides the listing timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) { s.timeout = d }
}

// WithPageSize overrides the files.list page size.
func WithPageSize(n int64) Option {
	return func(s *Source) { s.pageSize = n }
}

// New creates a Drive source for the folder named by folderLocator,
// which may be a bare folder ID or a full sharing URL.
func New(svc *drivev3.Service, folderLocator string, opts ...Option) *Source {
	s := &Source{
		folderID: FolderIDFromURL(folderLocator),
		limiter:  google.NewRateLimiter(),
		timeout:  DefaultTimeout,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.listPage == nil {
		s.listPage = func(ctx context.Context, pageToken string) (*drivev3.FileList, error) {
			call := svc.Files.List().
				Q(folderQuery(s.folderID)).
				Fields(listFields).
				PageSize(s.pageSize).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			return call.Do()
		}
	}
	return s
}

// Type returns the source type identifier.
func (s *Source) Type() string { return "drive" }

// FolderID returns the resolved folder identifier.
func (s *Source) FolderID() string { return s.folderID }

// List fetches the folder contents. Transport failures surface as
// domain.ErrSourceUnavailable so the refresher keeps the previous
// snapshot instead of publishing a partial listing.
func (s *Source) List(ctx context.Context) ([]domain.RawDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var docs []domain.RawDocument
	pageToken := ""
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit wait: %w", domain.ErrSourceUnavailable, err)
		}

		page, err := s.listPage(ctx, pageToken)
		if err != nil {
			return nil, fmt.Errorf("%w: list folder %s: %w", domain.ErrSourceUnavailable, s.folderID, err)
		}

		for _, file := range page.Files {
			if doc, ok := fileToRawDocument(file); ok {
				docs = append(docs, doc)
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			return docs, nil
		}
	}
}

// fileToRawDocument maps one listing row. Sub-folders and rows
// without an ID are skipped.
func fileToRawDocument(file *drivev3.File) (domain.RawDocument, bool) {
	if file == nil || file.Id == "" || file.MimeType == MimeTypeFolder {
		return domain.RawDocument{}, false
	}
	return domain.RawDocument{
		Title:    file.Name,
		Locator:  file.Id,
		MIMEKind: file.MimeType,
	}, true
}

// FolderIDFromURL extracts the folder ID from a sharing URL of the
// form .../folders/<id>[/...]. Anything that does not contain a
// /folders/ segment is used verbatim as the ID, so a bare identifier
// passes through unchanged.
func FolderIDFromURL(locator string) string {
	locator = strings.TrimSpace(locator)

	const marker = "/folders/"
	i := strings.Index(locator, marker)
	if i < 0 {
		return locator
	}

	id := locator[i+len(marker):]
	for _, sep := range []string{"/", "?", "#"} {
		if j := strings.Index(id, sep); j >= 0 {
			id = id[:j]
		}
	}
	return id
}

// folderQuery builds the files.list query for one folder, excluding
// trashed items. Single quotes in the ID are escaped per the Drive
// query grammar.
func folderQuery(folderID string) string {
	escaped := strings.ReplaceAll(folderID, `'`, `\'`)
	return fmt.Sprintf("'%s' in parents and trashed=false", escaped)
}
