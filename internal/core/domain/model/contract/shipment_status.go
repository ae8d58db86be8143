package contract

import (
	"fmt"

	"medledger/internal/pkg/errs"
)

// ShipmentStatus represents the carriage state of a single shipment.
//
// State transitions (driven by the carrying business):
//
//	WaitingConfirmation ──> Accepted ──> InTransit
//	         │                  │
//	         ├──> Rejected      └──> Cancelled
//	         └──> Cancelled
//
// Accepting a shipment moves custody of its items from the selling business
// to the carrier; delivery to the buyer is tracked separately through the
// shipment's ReceivingStatus.
type ShipmentStatus int

const (
	// ShipmentUnknown represents an invalid or undefined shipment status.
	ShipmentUnknown ShipmentStatus = iota

	// ShipmentWaitingConfirmation means the carrier has not yet accepted
	// the carriage.
	ShipmentWaitingConfirmation

	// ShipmentAccepted means the carrier accepted and took custody of the
	// shipment's items.
	ShipmentAccepted

	// ShipmentInTransit means the shipment is on its way to the buyer.
	ShipmentInTransit

	// ShipmentRejected means the carrier declined the carriage.
	ShipmentRejected

	// ShipmentCancelled means the carriage was called off.
	ShipmentCancelled
)

func getShipmentStatusStrings() map[ShipmentStatus]string {
	return map[ShipmentStatus]string{
		ShipmentUnknown:             "Unknown",
		ShipmentWaitingConfirmation: "WaitingConfirmation",
		ShipmentAccepted:            "Accepted",
		ShipmentInTransit:           "InTransit",
		ShipmentRejected:            "Rejected",
		ShipmentCancelled:           "Cancelled",
	}
}

func getValidShipmentStatusStrings() map[ShipmentStatus]string {
	//nolint:exhaustive // ShipmentUnknown is intentionally excluded as it's invalid
	return map[ShipmentStatus]string{
		ShipmentWaitingConfirmation: "WaitingConfirmation",
		ShipmentAccepted:            "Accepted",
		ShipmentInTransit:           "InTransit",
		ShipmentRejected:            "Rejected",
		ShipmentCancelled:           "Cancelled",
	}
}

func getAllowedShipmentTransitions() map[ShipmentStatus][]ShipmentStatus {
	//nolint:exhaustive // terminal statuses have no outgoing transitions
	return map[ShipmentStatus][]ShipmentStatus{
		ShipmentWaitingConfirmation: {ShipmentAccepted, ShipmentRejected, ShipmentCancelled},
		ShipmentAccepted:            {ShipmentInTransit, ShipmentCancelled},
	}
}

// Validate checks that the ShipmentStatus is one of the defined states.
func (s ShipmentStatus) Validate() error {
	if _, ok := getValidShipmentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipment status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the human-readable name of the shipment status.
func (s ShipmentStatus) String() string {
	if str, ok := getShipmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ShipmentStatusFromString parses a shipment status from its textual form.
func ShipmentStatusFromString(value string) (ShipmentStatus, error) {
	for s, str := range getValidShipmentStatusStrings() {
		if str == value {
			return s, nil
		}
	}
	return ShipmentUnknown, errs.NewValueIsInvalidErrorWithCause("shipment status is invalid",
		fmt.Errorf("%q is not a valid shipment status", value))
}

// TransitionTo validates the move to the next status and returns it.
// Accepting a shipment twice is not a legal transition; custody has already
// moved to the carrier the first time.
func (s ShipmentStatus) TransitionTo(next ShipmentStatus) (ShipmentStatus, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	for _, allowed := range getAllowedShipmentTransitions()[s] {
		if next == allowed {
			return next, nil
		}
	}

	return 0, errs.NewInvalidStateTransitionError("shipment", s.String(), next.String())
}
