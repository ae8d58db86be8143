package business

import (
	"fmt"

	"medledger/internal/pkg/errs"
)

// Type classifies the role a business plays in the supply chain.
// The role is fixed at registration and never changes afterwards.
type Type int

const (
	// UnknownType represents an invalid or undefined business type.
	// This value (0) helps catch uninitialized Type values.
	UnknownType Type = iota

	// Manufacturer produces medication items and is the usual selling side.
	Manufacturer

	// Carrier transports shipments and holds custody of items in transit.
	Carrier

	// Distributor receives items and is the usual buying side.
	Distributor
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:  "Unknown",
		Manufacturer: "Manufacturer",
		Carrier:      "Carrier",
		Distributor:  "Distributor",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Manufacturer: "Manufacturer",
		Carrier:      "Carrier",
		Distributor:  "Distributor",
	}
}

// Validate checks that the Type is one of Manufacturer, Carrier, Distributor.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("business type is invalid",
			fmt.Errorf("%d is not a valid business type", t))
	}
	return nil
}

// String returns the human-readable name of the business type.
// Implements fmt.Stringer; safe to call on any value, including invalid ones.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString parses a business type from its textual form, as received
// on the HTTP edge. Returns an error for unknown names.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("business type is invalid",
		fmt.Errorf("%q is not a valid business type", s))
}
