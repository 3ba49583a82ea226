// Package batch runs the reaction calculator over an ordered sequence of
// inputs.
//
// Each input is calculated independently. Valid inputs produce a
// reaction.Result tagged with its 1-based position in the input sequence;
// invalid inputs produce a Failure with the same positional id and are
// skipped. One bad record never fails the whole batch, and ids are not
// renumbered after a skip.
//
// # Usage
//
//	runner := batch.NewRunner(
//	    batch.WithLogger(logger),
//	    batch.WithWorkers(4),
//	)
//	report := runner.Run(ctx, inputs)
//	for _, f := range report.Failures {
//	    fmt.Printf("record %d skipped: %v\n", f.BatchID, f.Err)
//	}
//
// # Concurrency
//
// With more than one worker, items are calculated in parallel and collected
// back into input order before the report is built, so the output is
// identical to a sequential run.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package batch
