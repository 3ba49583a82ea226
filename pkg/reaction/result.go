package reaction

// LimitingReactant names the reactant that bounds product formation.
type LimitingReactant string

const (
	LimitingSalicylicAcid   LimitingReactant = "salicylic_acid"
	LimitingAceticAnhydride LimitingReactant = "acetic_anhydride"
	// LimitingBoth is reported when the reactants are in exact 1:1 molar ratio.
	LimitingBoth LimitingReactant = "both"
)

// Result is the outcome of one reaction. All masses are in grams.
//
// BatchID is the 1-based position of the input within a batch; it is zero
// for standalone calculations.
type Result struct {
	AspirinMass              float64 `json:"aspirin_mass"`
	UnreactedSalicylicAcid   float64 `json:"unreacted_salicylic_acid"`
	UnreactedAceticAnhydride float64 `json:"unreacted_acetic_anhydride"`
	AceticAcidMass           float64 `json:"acetic_acid_mass"`
	BatchID                  int     `json:"batch_id"`

	Limiting               LimitingReactant `json:"limiting_reactant"`
	TheoreticalAspirinMass float64          `json:"theoretical_aspirin_mass"`
}

// PercentYield returns actual aspirin mass as a percentage of the
// theoretical maximum.
func (r Result) PercentYield() float64 {
	if r.TheoreticalAspirinMass == 0 {
		return 0
	}
	return r.AspirinMass / r.TheoreticalAspirinMass * 100
}
