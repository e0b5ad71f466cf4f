package qr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfolio/docfolio/internal/core/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestEncode_WellFormedURL(t *testing.T) {
	png, err := NewEncoder().Encode("https://docs.example.com/view/q1report", 128)

	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestEncode_DefaultSize(t *testing.T) {
	png, err := NewEncoder().Encode("https://docs.example.com/view/a", 0)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestEncode_EmptyURL(t *testing.T) {
	_, err := NewEncoder().Encode("", 128)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEncodeFailed)
}

func TestEncode_PathologicalPayload(t *testing.T) {
	// Beyond QR version 40 capacity.
	_, err := NewEncoder().Encode("https://example.com/"+strings.Repeat("x", 5000), 128)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEncodeFailed)
}
