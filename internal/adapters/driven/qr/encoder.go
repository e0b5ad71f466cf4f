// Package qr renders registry URLs as QR code PNGs.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/docfolio/docfolio/internal/core/domain"
	"github.com/docfolio/docfolio/internal/core/ports/driven"
)

// DefaultSize is the rendered image edge in pixels.
const DefaultSize = 256

// Ensure Encoder implements the interface.
var _ driven.QREncoder = (*Encoder)(nil)

// Encoder produces QR code PNGs with medium error correction.
type Encoder struct{}

// NewEncoder creates a QR encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders the URL as a PNG. Fails on an empty URL or a
// payload beyond QR capacity; a well-formed document URL always
// encodes.
func (e *Encoder) Encode(absoluteURL string, size int) ([]byte, error) {
	if absoluteURL == "" {
		return nil, fmt.Errorf("%w: empty url", domain.ErrEncodeFailed)
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(absoluteURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncodeFailed, err)
	}
	return png, nil
}
