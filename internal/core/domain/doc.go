// Package domain defines the core business entities for Docfolio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: One listing row from a document source
//   - Entry: A published document with its slug and URLs
//   - Snapshot: One complete, immutable build of the slug registry
//   - SlugTable: Per-snapshot slug assignment with collision handling
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
