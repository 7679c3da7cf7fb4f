// Package logging provides a minimal logging interface and adapters for CogMesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the store, bridge and extractor use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - MeshLogger with contextual cloning helpers (component, space, custom attrs)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	store := space.New(func(o *space.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
