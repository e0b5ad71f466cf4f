package drive

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	drivev3 "google.golang.org/api/drive/v3"

	"github.com/docfolio/docfolio/internal/connectors/google"
	"github.com/docfolio/docfolio/internal/core/domain"
	"github.com/docfolio/docfolio/internal/normalisers/gdocs"
)

func TestFolderIDFromURL(t *testing.T) {
	tests := []struct {
		name    string
		locator string
		want    string
	}{
		{"sharing url", "https://drive.google.com/drive/folders/1AbC_dEf", "1AbC_dEf"},
		{"trailing path", "https://drive.google.com/drive/folders/1AbC/view", "1AbC"},
		{"query suffix", "https://drive.google.com/drive/folders/1AbC?usp=sharing", "1AbC"},
		{"fragment suffix", "https://drive.google.com/drive/folders/1AbC#top", "1AbC"},
		{"bare id verbatim", "1AbC_dEf", "1AbC_dEf"},
		{"no match verbatim", "https://example.com/not-drive", "https://example.com/not-drive"},
		{"whitespace trimmed", "  1AbC  ", "1AbC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FolderIDFromURL(tt.locator))
		})
	}
}

func TestFolderQuery(t *testing.T) {
	assert.Equal(t, "'1AbC' in parents and trashed=false", folderQuery("1AbC"))
	assert.Equal(t, `'o\'brien' in parents and trashed=false`, folderQuery("o'brien"))
}

func TestFileToRawDocument(t *testing.T) {
	doc, ok := fileToRawDocument(&drivev3.File{
		Id:       "F1",
		Name:     "Roadmap",
		MimeType: gdocs.MimeTypeDocument,
	})

	require.True(t, ok)
	assert.Equal(t, domain.RawDocument{
		Title:    "Roadmap",
		Locator:  "F1",
		MIMEKind: gdocs.MimeTypeDocument,
	}, doc)
}

func TestFileToRawDocument_SkipsFoldersAndBlanks(t *testing.T) {
	_, ok := fileToRawDocument(&drivev3.File{Id: "F1", Name: "Sub", MimeType: MimeTypeFolder})
	assert.False(t, ok)

	_, ok = fileToRawDocument(&drivev3.File{Name: "NoID"})
	assert.False(t, ok)

	_, ok = fileToRawDocument(nil)
	assert.False(t, ok)
}

func newFakeSource(pages map[string]*drivev3.FileList, errOn string) *Source {
	s := &Source{
		folderID: "FOLDER",
		limiter:  google.NewRateLimiter(),
		timeout:  DefaultTimeout,
		pageSize: DefaultPageSize,
	}
	s.listPage = func(_ context.Context, token string) (*drivev3.FileList, error) {
		if errOn != "" && token == errOn {
			return nil, errors.New("boom")
		}
		if page, ok := pages[token]; ok {
			return page, nil
		}
		return &drivev3.FileList{}, nil
	}
	return s
}

func TestList_MapsAndPaginates(t *testing.T) {
	pages := map[string]*drivev3.FileList{
		"": {
			NextPageToken: "page2",
			Files: []*drivev3.File{
				{Id: "A", Name: "Doc A", MimeType: gdocs.MimeTypeDocument},
				{Id: "SUB", Name: "Nested", MimeType: MimeTypeFolder},
			},
		},
		"page2": {
			Files: []*drivev3.File{
				{Id: "B", Name: "Sheet B", MimeType: gdocs.MimeTypeSpreadsheet},
			},
		},
	}

	docs, err := newFakeSource(pages, "").List(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "A", docs[0].Locator)
	assert.Equal(t, "B", docs[1].Locator)
}

func TestList_EmptyFolderIsValid(t *testing.T) {
	docs, err := newFakeSource(nil, "").List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestList_ErrorWrapsSourceUnavailable(t *testing.T) {
	pages := map[string]*drivev3.FileList{
		"": {NextPageToken: "page2", Files: []*drivev3.File{{Id: "A", Name: "Doc"}}},
	}

	_, err := newFakeSource(pages, "page2").List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
