package driven

// QREncoder renders an absolute URL as a QR code image.
type QREncoder interface {
	// Encode returns PNG bytes for the given URL at the requested
	// pixel size. Fails only on pathological input (empty URL,
	// payload too large), never on a well-formed URL.
	Encode(absoluteURL string, size int) ([]byte, error)
}
