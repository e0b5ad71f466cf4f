package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested slug does not exist in the
	// current snapshot. This is a normal lookup miss, not a fault.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates a document source failed to
	// fetch or parse its listing. Recoverable: the refresh cycle is
	// skipped and the previous snapshot stays published.
	ErrSourceUnavailable = errors.New("document source unavailable")

	// ErrEncodeFailed indicates QR image generation failed.
	// Surfaced to the web layer as a missing image, never a crash.
	ErrEncodeFailed = errors.New("qr encode failed")
)
