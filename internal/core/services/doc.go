// Package services implements the driving port interfaces.
// Services contain the core business logic: the registry holding
// the published snapshot, the snapshot builder, and the refresher
// that rebuilds the registry on a timer.
//
// Services depend on driven ports only, never on adapters.
package services
