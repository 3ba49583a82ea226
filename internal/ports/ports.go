package ports

import (
	"context"
	"time"

	"github.com/bft-labs/stoich/pkg/batch"
	"github.com/bft-labs/stoich/pkg/log"
	"github.com/bft-labs/stoich/pkg/reaction"
)

// Logger is the structured logger used across the application.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// InputSource loads batch records in their original order. A record that
// cannot be decoded is returned in place with its Err set.
type InputSource interface {
	Load(ctx context.Context) ([]batch.Item, error)
}

// ResultSink persists the results of a run.
// Implementations must write results in the order given.
type ResultSink interface {
	WriteResults(ctx context.Context, results []reaction.Result) error
}

// RunSummary is the persisted aggregate of one run.
type RunSummary struct {
	RunID      string    `json:"run_id"`
	Input      string    `json:"input"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	batch.Summary
	Failures []FailureRecord `json:"failures,omitempty"`
}

// FailureRecord is the serializable form of a skipped batch item.
type FailureRecord struct {
	BatchID int    `json:"batch_id"`
	Error   string `json:"error"`
}

// SummarySink persists a RunSummary.
type SummarySink interface {
	WriteSummary(ctx context.Context, summary RunSummary) error
}

// MetricsRecorder records the outcome of a run and flushes it to storage.
type MetricsRecorder interface {
	Observe(report batch.Report, finishedAt time.Time)
	Flush() error
}
