package reaction

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("reaction: invalid input")

// Input field names as they appear in serialized records.
const (
	FieldSalicylicAcid      = "salicylic_acid"
	FieldAceticAnhydride    = "acetic_anhydride"
	FieldCatalystEfficiency = "catalyst_efficiency"
)

// FieldRecord names a record that could not be decoded as a whole.
const FieldRecord = "record"

// InvalidInputError reports a reaction input that violates a constraint.
// Cause is set when the record could not be decoded; Value is then unused.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
	Cause  error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("reaction: invalid %s: %s: %v", e.Field, e.Reason, e.Cause)
	}
	return fmt.Sprintf("reaction: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns the decode error, if any.
func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
