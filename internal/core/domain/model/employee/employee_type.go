package employee

import (
	"fmt"

	"medledger/internal/pkg/errs"
)

// Type distinguishes administrative staff from regular staff.
type Type int

const (
	// UnknownType represents an invalid or undefined employee type.
	UnknownType Type = iota

	// Admin can manage the business's roster and records.
	Admin

	// Regular performs day-to-day operations.
	Regular
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		Admin:       "Admin",
		Regular:     "Regular",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Admin:   "Admin",
		Regular: "Regular",
	}
}

// Validate checks that the Type is Admin or Regular.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("employee type is invalid",
			fmt.Errorf("%d is not a valid employee type", t))
	}
	return nil
}

// String returns the human-readable name of the employee type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString parses an employee type from its textual form.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("employee type is invalid",
		fmt.Errorf("%q is not a valid employee type", s))
}
