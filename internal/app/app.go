// Package app wires the batch runner to its input source, result sinks and
// metrics for a single stoich run, and re-runs it when the input changes.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bft-labs/stoich/internal/ports"
	"github.com/bft-labs/stoich/pkg/batch"
	"github.com/bft-labs/stoich/pkg/log"
)

// ErrRecordsFailed is returned in strict mode when at least one batch record
// was skipped. The run itself completed and its outputs were written.
var ErrRecordsFailed = errors.New("stoich: one or more batch records failed")

// Deps are the collaborators of an App. Summary and Metrics are optional.
type Deps struct {
	Source  ports.InputSource
	Results ports.ResultSink
	Summary ports.SummarySink
	Metrics ports.MetricsRecorder
	Runner  *batch.Runner
	Logger  ports.Logger

	// InputName is recorded in the run summary.
	InputName string

	// Strict turns skipped records into ErrRecordsFailed.
	Strict bool
}

// App runs batches.
type App struct {
	deps Deps
	now  func() time.Time
}

// New creates an App. Source and Results are required.
func New(deps Deps) (*App, error) {
	if deps.Source == nil {
		return nil, errors.New("app: input source is required")
	}
	if deps.Results == nil {
		return nil, errors.New("app: result sink is required")
	}
	if deps.Logger == nil {
		deps.Logger = log.NewNoopLogger()
	}
	if deps.Runner == nil {
		deps.Runner = batch.NewRunner(batch.WithLogger(deps.Logger))
	}
	return &App{deps: deps, now: time.Now}, nil
}

// RunOnce loads the batch, calculates it and writes every output.
func (a *App) RunOnce(ctx context.Context) (batch.Report, error) {
	runID := ulid.Make().String()
	started := a.now()

	items, err := a.deps.Source.Load(ctx)
	if err != nil {
		return batch.Report{}, fmt.Errorf("load input: %w", err)
	}
	a.deps.Logger.Info("batch loaded",
		log.String("run_id", runID),
		log.Int("records", len(items)),
	)

	report, err := a.deps.Runner.RunItems(ctx, items)
	if err != nil {
		return report, err
	}

	if err := a.deps.Results.WriteResults(ctx, report.Results); err != nil {
		return report, fmt.Errorf("write results: %w", err)
	}

	finished := a.now()
	summary := report.Summary()

	if a.deps.Summary != nil {
		rs := ports.RunSummary{
			RunID:      runID,
			Input:      a.deps.InputName,
			StartedAt:  started.UTC(),
			FinishedAt: finished.UTC(),
			Summary:    summary,
		}
		for _, f := range report.Failures {
			rs.Failures = append(rs.Failures, ports.FailureRecord{BatchID: f.BatchID, Error: f.Err.Error()})
		}
		if err := a.deps.Summary.WriteSummary(ctx, rs); err != nil {
			return report, fmt.Errorf("write summary: %w", err)
		}
	}

	if a.deps.Metrics != nil {
		a.deps.Metrics.Observe(report, finished)
		if err := a.deps.Metrics.Flush(); err != nil {
			return report, fmt.Errorf("write metrics: %w", err)
		}
	}

	a.deps.Logger.Info("batch complete",
		log.String("run_id", runID),
		log.Int("processed", summary.Processed),
		log.Int("succeeded", summary.Succeeded),
		log.Int("failed", summary.Failed),
		log.Float64("aspirin_mass", summary.AspirinMass),
		log.Duration("elapsed", finished.Sub(started)),
	)

	if a.deps.Strict && report.HasFailures() {
		return report, fmt.Errorf("%w: %d of %d", ErrRecordsFailed, summary.Failed, summary.Processed)
	}
	return report, nil
}
