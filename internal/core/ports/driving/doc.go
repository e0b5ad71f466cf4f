// Package driving defines the interfaces through which the outside
// world (the web surface, the CLI) drives the core services.
package driving
