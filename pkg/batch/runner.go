package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/stoich/pkg/log"
	"github.com/bft-labs/stoich/pkg/reaction"
)

// FailureHandler receives every skipped item, in input order.
type FailureHandler func(Failure)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used to report skipped items.
func WithLogger(logger log.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithWorkers sets the number of items calculated in parallel.
// Values below 2 keep the run sequential.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithFailureHandler registers a callback for skipped items. It runs after
// the failure has been logged.
func WithFailureHandler(h FailureHandler) Option {
	return func(r *Runner) {
		r.onFailure = h
	}
}

// Runner calculates batches of reaction inputs. It holds no state between
// runs and is safe for concurrent use.
type Runner struct {
	logger    log.Logger
	workers   int
	onFailure FailureHandler
}

// NewRunner creates a Runner. Without options it is sequential and silent.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:  log.NewNoopLogger(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run calculates every input and returns the ordered report. Cancellation
// of ctx stops scheduling new items; use RunE to observe it.
func (r *Runner) Run(ctx context.Context, inputs []reaction.Input) Report {
	report, _ := r.RunE(ctx, inputs)
	return report
}

// RunE is Run but also returns ctx.Err() when the run was cut short. The
// report then covers only the items processed before cancellation.
func (r *Runner) RunE(ctx context.Context, inputs []reaction.Input) (Report, error) {
	return r.RunItems(ctx, Items(inputs))
}

// RunItems is RunE for records that may already carry a decode error. Such
// items become failures with their positional batch id and are never
// calculated.
func (r *Runner) RunItems(ctx context.Context, items []Item) (Report, error) {
	outcomes, err := r.calculate(ctx, items)

	report := Report{Results: make([]reaction.Result, 0, len(items))}
	for _, o := range outcomes {
		if !o.done {
			continue
		}
		if o.err != nil {
			f := Failure{BatchID: o.id, Input: items[o.id-1].Input, Err: o.err}
			report.Failures = append(report.Failures, f)
			r.reportFailure(f)
			continue
		}
		report.Results = append(report.Results, o.result)
	}
	return report, err
}

type outcome struct {
	id     int
	done   bool
	result reaction.Result
	err    error
}

// calculate fills one slot per input so that parallel runs keep input order.
func (r *Runner) calculate(ctx context.Context, items []Item) ([]outcome, error) {
	outcomes := make([]outcome, len(items))

	if r.workers < 2 {
		for i, it := range items {
			if err := ctx.Err(); err != nil {
				return outcomes, err
			}
			outcomes[i] = calculateOne(i, it)
		}
		return outcomes, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, it := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = calculateOne(i, it)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, ctx.Err()
}

func calculateOne(i int, it Item) outcome {
	if it.Err != nil {
		return outcome{id: i + 1, done: true, err: it.Err}
	}
	res, err := reaction.Calculate(it.Input)
	if err != nil {
		return outcome{id: i + 1, done: true, err: err}
	}
	res.BatchID = i + 1
	return outcome{id: i + 1, done: true, result: res}
}

func (r *Runner) reportFailure(f Failure) {
	r.logger.Warn("batch record skipped",
		log.BatchID(f.BatchID),
		log.Err(f.Err),
	)
	if r.onFailure != nil {
		r.onFailure(f)
	}
}
