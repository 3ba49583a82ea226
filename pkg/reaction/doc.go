// Package reaction computes stoichiometric yield for aspirin synthesis.
//
// Salicylic acid and acetic anhydride react 1:1 to form aspirin and acetic
// acid. Given the mass of each reactant and a catalyst efficiency, Calculate
// determines the limiting reactant and returns the masses of product,
// byproduct and leftover reactants. The package performs no I/O and keeps no
// state between calls.
//
// # Usage
//
//	in, err := reaction.NewInput(100, 150, 85)
//	if err != nil {
//	    return err
//	}
//	res, err := reaction.Calculate(in)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("aspirin: %.2f g\n", res.AspirinMass)
//
// # Errors
//
// Every validation failure is an *InvalidInputError. Use errors.Is with
// ErrInvalidInput to detect them, or errors.As to inspect the field.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package reaction
