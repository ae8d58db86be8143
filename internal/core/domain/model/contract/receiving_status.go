package contract

import (
	"fmt"

	"medledger/internal/pkg/errs"
)

// ReceivingStatus tracks whether a shipment has been delivered to the
// buying business. It moves from NotArrived to Arrived exactly once, when
// the buyer approves the arrival; the completion gate requires every
// shipment to be Arrived.
type ReceivingStatus int

const (
	// ReceivingUnknown represents an invalid or undefined receiving status.
	ReceivingUnknown ReceivingStatus = iota

	// NotArrived means the buyer has not yet received the shipment.
	NotArrived

	// Arrived means the buyer received the shipment and took custody of
	// its items.
	Arrived
)

func getReceivingStatusStrings() map[ReceivingStatus]string {
	return map[ReceivingStatus]string{
		ReceivingUnknown: "Unknown",
		NotArrived:       "NotArrived",
		Arrived:          "Arrived",
	}
}

func getValidReceivingStatusStrings() map[ReceivingStatus]string {
	//nolint:exhaustive // ReceivingUnknown is intentionally excluded as it's invalid
	return map[ReceivingStatus]string{
		NotArrived: "NotArrived",
		Arrived:    "Arrived",
	}
}

// Validate checks that the ReceivingStatus is one of the defined states.
func (s ReceivingStatus) Validate() error {
	if _, ok := getValidReceivingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("receiving status is invalid",
			fmt.Errorf("%d is not a valid receiving status", s))
	}
	return nil
}

// String returns the human-readable name of the receiving status.
func (s ReceivingStatus) String() string {
	if str, ok := getReceivingStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ReceivingStatusFromString parses a receiving status from its textual form.
func ReceivingStatusFromString(value string) (ReceivingStatus, error) {
	for s, str := range getValidReceivingStatusStrings() {
		if str == value {
			return s, nil
		}
	}
	return ReceivingUnknown, errs.NewValueIsInvalidErrorWithCause("receiving status is invalid",
		fmt.Errorf("%q is not a valid receiving status", value))
}
