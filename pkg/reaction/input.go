package reaction

import "math"

// Input holds the reactant masses (grams) and catalyst efficiency (percent)
// for a single reaction instance.
type Input struct {
	SalicylicAcidMass   float64 `json:"salicylic_acid" yaml:"salicylic_acid"`
	AceticAnhydrideMass float64 `json:"acetic_anhydride" yaml:"acetic_anhydride"`
	CatalystEfficiency  float64 `json:"catalyst_efficiency" yaml:"catalyst_efficiency"`
}

// NewInput builds an Input and validates it.
func NewInput(salicylicAcid, aceticAnhydride, efficiency float64) (Input, error) {
	in := Input{
		SalicylicAcidMass:   salicylicAcid,
		AceticAnhydrideMass: aceticAnhydride,
		CatalystEfficiency:  efficiency,
	}
	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// Validate checks that both masses are positive and finite and that the
// efficiency lies in (0, 100].
func (in Input) Validate() error {
	if err := checkMass(FieldSalicylicAcid, in.SalicylicAcidMass); err != nil {
		return err
	}
	if err := checkMass(FieldAceticAnhydride, in.AceticAnhydrideMass); err != nil {
		return err
	}

	e := in.CatalystEfficiency
	if math.IsNaN(e) || e <= 0 || e > MaxEfficiency {
		return &InvalidInputError{
			Field:  FieldCatalystEfficiency,
			Value:  e,
			Reason: "must be greater than 0 and at most 100",
		}
	}
	return nil
}

// Moles returns the amount of each reactant in moles.
func (in Input) Moles() (salicylicAcid, aceticAnhydride float64) {
	return in.SalicylicAcidMass / SalicylicAcidMolarMass,
		in.AceticAnhydrideMass / AceticAnhydrideMolarMass
}

func checkMass(field string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &InvalidInputError{Field: field, Value: v, Reason: "must be a finite number"}
	case v <= 0:
		return &InvalidInputError{Field: field, Value: v, Reason: "must be greater than 0"}
	}
	return nil
}
