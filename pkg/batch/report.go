package batch

import "github.com/bft-labs/stoich/pkg/reaction"

// Failure records a batch item that could not be calculated.
type Failure struct {
	BatchID int
	Input   reaction.Input
	Err     error
}

// Report is the ordered outcome of one batch run.
type Report struct {
	Results  []reaction.Result
	Failures []Failure
}

// Summary aggregates a report.
type Summary struct {
	Processed              int     `json:"processed"`
	Succeeded              int     `json:"succeeded"`
	Failed                 int     `json:"failed"`
	AspirinMass            float64 `json:"aspirin_mass"`
	AceticAcidMass         float64 `json:"acetic_acid_mass"`
	TheoreticalAspirinMass float64 `json:"theoretical_aspirin_mass"`
	PercentYield           float64 `json:"percent_yield"`
}

// Summary totals product and byproduct masses over all successful items.
func (r Report) Summary() Summary {
	s := Summary{
		Succeeded: len(r.Results),
		Failed:    len(r.Failures),
	}
	s.Processed = s.Succeeded + s.Failed
	for _, res := range r.Results {
		s.AspirinMass += res.AspirinMass
		s.AceticAcidMass += res.AceticAcidMass
		s.TheoreticalAspirinMass += res.TheoreticalAspirinMass
	}
	if s.TheoreticalAspirinMass > 0 {
		s.PercentYield = s.AspirinMass / s.TheoreticalAspirinMass * 100
	}
	return s
}

// HasFailures reports whether any item was skipped.
func (r Report) HasFailures() bool {
	return len(r.Failures) > 0
}
