// Package driven defines the interfaces the core depends on.
// Adapters (connectors, the QR encoder, the embed normaliser)
// implement these interfaces; the core never imports an adapter.
package driven
