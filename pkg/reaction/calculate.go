package reaction

// Calculate converts the reactant masses to moles, picks the limiting
// reactant and returns product, byproduct and leftover masses.
//
// Aspirin is scaled by the catalyst efficiency. Acetic acid is produced 1:1
// with the limiting moles regardless of efficiency.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	saMoles, aaMoles := in.Moles()

	limiting := LimitingBoth
	limitingMoles := saMoles
	switch {
	case saMoles < aaMoles:
		limiting = LimitingSalicylicAcid
	case aaMoles < saMoles:
		limiting = LimitingAceticAnhydride
		limitingMoles = aaMoles
	}

	aspirinMoles := limitingMoles * (in.CatalystEfficiency / 100)

	return Result{
		AspirinMass:              aspirinMoles * AspirinMolarMass,
		UnreactedSalicylicAcid:   (saMoles - limitingMoles) * SalicylicAcidMolarMass,
		UnreactedAceticAnhydride: (aaMoles - limitingMoles) * AceticAnhydrideMolarMass,
		AceticAcidMass:           limitingMoles * AceticAcidMolarMass,
		Limiting:                 limiting,
		TheoreticalAspirinMass:   limitingMoles * AspirinMolarMass,
	}, nil
}
