// Package log provides the logging abstraction used by stoich components.
//
// The core packages (reaction, batch) never write output on their own. When
// they need to surface something, such as a skipped batch record, they call a
// Logger supplied by the caller. A zerolog adapter and a no-op logger are
// included.
//
// # Usage
//
//	logger := log.NewZerologLogger(zerolog.New(os.Stderr))
//	runner := batch.NewRunner(batch.WithLogger(logger))
//
// Tests and library callers that want silence can pass log.NewNoopLogger().
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
