// Package connectors provides implementations of the DocumentSource
// interface. Each connector knows how to list documents from a
// specific source type: a Google Drive folder or a declarative
// manifest file.
package connectors
