package contract

import (
	"fmt"

	"medledger/internal/pkg/errs"
)

// Status represents the overall lifecycle state of a contract.
//
// State transitions:
//
//	WaitingConfirmation ──> Confirmed ──> Completed
//	         │
//	         └──> Cancelled (per side; record deleted once both sides cancel)
//
// Confirmed is reached only through the confirmation gate (both approvals
// Confirmed and every shipment Accepted); Completed only through the
// completion gate (both approvals Confirmed and every shipment Arrived).
// Completed is terminal.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// WaitingConfirmation is the initial status: terms are still being
	// negotiated and at least one side has not confirmed.
	WaitingConfirmation

	// Confirmed means both sides approved the current terms and every
	// shipment was accepted by its carrier.
	Confirmed

	// Completed means every shipment arrived at the buyer. Terminal.
	Completed

	// Cancelled means at least one side withdrew from the contract.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:       "Unknown",
		WaitingConfirmation: "WaitingConfirmation",
		Confirmed:           "Confirmed",
		Completed:           "Completed",
		Cancelled:           "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		WaitingConfirmation: "WaitingConfirmation",
		Confirmed:           "Confirmed",
		Completed:           "Completed",
		Cancelled:           "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid contract status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a contract status from its textual form.
func StatusFromString(value string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == value {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid contract status", value))
}

// Confirm transitions the status to Confirmed. Only a contract still waiting
// for confirmation can be confirmed; the caller has already evaluated the
// confirmation gate.
func (s Status) Confirm() (Status, error) {
	if s != WaitingConfirmation {
		return 0, errs.NewInvalidStateTransitionError("contract", s.String(), Confirmed.String())
	}
	return Confirmed, nil
}

// Complete transitions the status to Completed. Only a confirmed contract
// can complete; the caller has already evaluated the completion gate.
func (s Status) Complete() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateTransitionError("contract", s.String(), Completed.String())
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled. Confirmed and Completed
// contracts cannot be cancelled. Cancelled -> Cancelled is allowed so the
// second side can record its withdrawal.
func (s Status) Cancel() (Status, error) {
	if s != WaitingConfirmation && s != Cancelled {
		return 0, errs.NewInvalidStateTransitionError("contract", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
