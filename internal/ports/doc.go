// Package ports defines the interfaces that connect the stoich application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [InputSource]: loads the ordered batch of reaction inputs
//   - [ResultSink]: persists successful results, one record per result
//   - [SummarySink]: persists the aggregate of a run
//   - [MetricsRecorder]: records run metrics
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters (internal/adapters, internal/metrics) provide the file system and
// Prometheus implementations.
package ports
