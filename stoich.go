// Package stoich computes aspirin synthesis yield for single reactions and
// batches of reactions.
//
// Example usage:
//
//	res, err := stoich.Calculate(stoich.Input{
//	    SalicylicAcidMass:   100,
//	    AceticAnhydrideMass: 150,
//	    CatalystEfficiency:  85,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report := stoich.RunBatch(context.Background(), inputs)
//	for _, f := range report.Failures {
//	    fmt.Printf("record %d skipped: %v\n", f.BatchID, f.Err)
//	}
package stoich

import (
	"context"

	"github.com/bft-labs/stoich/pkg/batch"
	"github.com/bft-labs/stoich/pkg/reaction"
)

// Input holds reactant masses in grams and catalyst efficiency in percent.
type Input = reaction.Input

// Result holds product, byproduct and leftover masses in grams.
type Result = reaction.Result

// InvalidInputError reports an input constraint violation.
type InvalidInputError = reaction.InvalidInputError

// Report is the ordered outcome of a batch run.
type Report = batch.Report

// Failure is a skipped batch record.
type Failure = batch.Failure

// ErrInvalidInput matches every InvalidInputError via errors.Is.
var ErrInvalidInput = reaction.ErrInvalidInput

// Calculate computes the yield of a single reaction.
func Calculate(in Input) (Result, error) {
	return reaction.Calculate(in)
}

// RunBatch calculates inputs sequentially, skipping invalid records.
// Use pkg/batch directly for logging, parallelism or failure callbacks.
func RunBatch(ctx context.Context, inputs []Input) Report {
	return batch.NewRunner().Run(ctx, inputs)
}
