package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfolio/docfolio/internal/core/domain"
	"github.com/docfolio/docfolio/internal/normalisers/gdocs"
)

func TestBuildSnapshot_OneEntryPerRecord(t *testing.T) {
	docs := []domain.RawDocument{
		{Title: "Alpha", Locator: "https://example.com/a"},
		{Title: "Beta", Locator: "https://example.com/b"},
		{Title: "Gamma", Locator: "https://example.com/c"},
	}

	snap := BuildSnapshot(docs, gdocs.New())

	require.Equal(t, 3, snap.Len())
	assert.NotEmpty(t, snap.CycleID)
	assert.False(t, snap.BuiltAt.IsZero())
}

func TestBuildSnapshot_CollidingTitlesGetSuffixes(t *testing.T) {
	docs := []domain.RawDocument{
		{Title: "Q1 Report", Locator: "https://example.com/1"},
		{Title: "Q1  Report!", Locator: "https://example.com/2"},
	}

	snap := BuildSnapshot(docs, gdocs.New())

	require.Equal(t, 2, snap.Len())
	first, ok := snap.Lookup("q1report")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/1", first.SourceURL)

	second, ok := snap.Lookup("q1report-2")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/2", second.SourceURL)
}

func TestBuildSnapshot_UniqueSlugsUnderMassCollision(t *testing.T) {
	docs := make([]domain.RawDocument, 20)
	for i := range docs {
		docs[i] = domain.RawDocument{Title: "Same Title", Locator: "https://example.com/x"}
	}

	snap := BuildSnapshot(docs, gdocs.New())

	assert.Equal(t, len(docs), snap.Len())
}

func TestBuildSnapshot_DocScenario(t *testing.T) {
	docs := []domain.RawDocument{
		{Title: "My Doc", Locator: "https://docs.google.com/document/d/ABC/edit"},
	}

	snap := BuildSnapshot(docs, gdocs.New())

	entry, ok := snap.Lookup("mydoc")
	require.True(t, ok)
	assert.Equal(t, "My Doc", entry.Title)
	assert.Equal(t, "https://docs.google.com/document/d/ABC/edit", entry.SourceURL)
	assert.Equal(t, "https://docs.google.com/document/d/ABC/preview?embedded=true&rm=minimal", entry.EmbedURL)
}

func TestBuildSnapshot_BlankLocatorSkipped(t *testing.T) {
	docs := []domain.RawDocument{
		{Title: "Kept", Locator: "https://example.com/kept"},
		{Title: "Dropped", Locator: "   "},
	}

	snap := BuildSnapshot(docs, gdocs.New())

	require.Equal(t, 1, snap.Len())
	_, ok := snap.Lookup("kept")
	assert.True(t, ok)
	_, ok = snap.Lookup("dropped")
	assert.False(t, ok)
}

func TestBuildSnapshot_EmptyListingIsValid(t *testing.T) {
	snap := BuildSnapshot(nil, gdocs.New())

	assert.Equal(t, 0, snap.Len())
	assert.NotEmpty(t, snap.CycleID)
}

func TestBuildSnapshot_UntitledDocumentsDoNotCollide(t *testing.T) {
	docs := []domain.RawDocument{
		{Title: "", Locator: "https://example.com/1"},
		{Title: "!!!", Locator: "https://example.com/2"},
	}

	snap := BuildSnapshot(docs, gdocs.New())

	assert.Equal(t, 2, snap.Len())
}
