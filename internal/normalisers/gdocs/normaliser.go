package gdocs

import (
	"net/url"
	"strings"

	"github.com/docfolio/docfolio/internal/core/domain"
	"github.com/docfolio/docfolio/internal/core/ports/driven"
)

// Google Workspace MIME types with an embeddable preview form.
const (
	MimeTypeDocument     = "application/vnd.google-apps.document"
	MimeTypeSpreadsheet  = "application/vnd.google-apps.spreadsheet"
	MimeTypePresentation = "application/vnd.google-apps.presentation"
	MimeTypeFolder       = "application/vnd.google-apps.folder"
)

const docsHost = "docs.google.com"

// Ensure Normaliser implements the interface.
var _ driven.EmbedNormaliser = (*Normaliser)(nil)

// Normaliser resolves Google Docs/Sheets/Slides locators and
// free-form published URLs into link and preview URLs. Pure and
// stateless; every rewrite is idempotent.
type Normaliser struct{}

// New creates a new normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Resolve maps a raw document to its canonical link and, where the
// provider supports one, an embeddable preview URL.
func (n *Normaliser) Resolve(doc domain.RawDocument) driven.ResolvedURLs {
	// Remote listing rows carry a MIME type and a file ID.
	if doc.MIMEKind != "" {
		if preview, ok := PreviewURL(doc.Locator, doc.MIMEKind); ok {
			return driven.ResolvedURLs{
				SourceURL: SourceURL(doc.Locator, doc.MIMEKind),
				EmbedURL:  preview,
			}
		}
		// PDFs, images etc. have no preview template; link out.
		return driven.ResolvedURLs{SourceURL: SourceURL(doc.Locator, doc.MIMEKind)}
	}

	// Declarative rows carry a URL.
	raw := strings.TrimSpace(doc.Locator)
	if embed, ok := NormaliseURL(raw); ok {
		return driven.ResolvedURLs{SourceURL: raw, EmbedURL: embed}
	}
	return driven.ResolvedURLs{SourceURL: raw}
}

// PreviewURL returns the fixed preview URL template for a native
// Google Workspace file, or false for any other MIME type.
func PreviewURL(fileID, mimeType string) (string, bool) {
	switch mimeType {
	case MimeTypeDocument:
		return "https://docs.google.com/document/d/" + fileID + "/preview", true
	case MimeTypeSpreadsheet:
		return "https://docs.google.com/spreadsheets/d/" + fileID + "/preview", true
	case MimeTypePresentation:
		return "https://docs.google.com/presentation/d/" + fileID + "/preview", true
	default:
		return "", false
	}
}

// SourceURL returns the canonical link for a Drive file ID.
// Native Workspace files link to their editor; anything else links
// to the generic Drive file view.
func SourceURL(fileID, mimeType string) string {
	switch mimeType {
	case MimeTypeDocument:
		return "https://docs.google.com/document/d/" + fileID + "/edit"
	case MimeTypeSpreadsheet:
		return "https://docs.google.com/spreadsheets/d/" + fileID + "/edit"
	case MimeTypePresentation:
		return "https://docs.google.com/presentation/d/" + fileID + "/edit"
	default:
		return "https://drive.google.com/file/d/" + fileID + "/view"
	}
}

// NormaliseURL rewrites a free-form published URL into an embeddable
// form. Returns false when the URL has no embeddable form and should
// be used as a plain link.
//
// docs.google.com URLs get any /edit... or /pub... suffix replaced
// with /preview plus embedded=true and rm=minimal appended exactly
// once each. URLs on other hosts pass through untouched, except that
// an existing /pub path gets embedded=true appended once.
func NormaliseURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw, false
	}

	if u.Host == docsHost {
		rewriteSuffix(u)
		appendParam(u, "embedded", "true")
		appendParam(u, "rm", "minimal")
		return u.String(), true
	}

	if lastSegmentHasPrefix(u.Path, "pub") {
		appendParam(u, "embedded", "true")
		return u.String(), true
	}

	return raw, false
}

// rewriteSuffix replaces a trailing /edit... or /pub... path segment
// with /preview. An explicit template function, not a regex; the
// path is otherwise left alone.
func rewriteSuffix(u *url.URL) {
	path := strings.TrimSuffix(u.Path, "/")
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return
	}
	last := path[i+1:]
	if strings.HasPrefix(last, "edit") || strings.HasPrefix(last, "pub") {
		u.Path = path[:i] + "/preview"
	}
}

// appendParam sets a query parameter unless it is already present,
// keeping re-normalisation from duplicating parameters.
func appendParam(u *url.URL, key, value string) {
	q := u.Query()
	if q.Has(key) {
		return
	}
	q.Set(key, value)
	u.RawQuery = q.Encode()
}

func lastSegmentHasPrefix(path, prefix string) bool {
	path = strings.TrimSuffix(path, "/")
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return false
	}
	return strings.HasPrefix(path[i+1:], prefix)
}
