package contract

import (
	"fmt"

	"medledger/internal/pkg/errs"
)

// ApprovalStatus is the per-side confirmation flag of a contract. Each
// contract carries one for the buying side and one for the selling side.
// Any structural edit to the contract's terms resets both back to
// ApprovalWaitingConfirmation, forcing unanimous re-approval.
type ApprovalStatus int

const (
	// ApprovalUnknown represents an invalid or undefined approval status.
	ApprovalUnknown ApprovalStatus = iota

	// ApprovalWaitingConfirmation means the side has not yet approved the
	// current terms.
	ApprovalWaitingConfirmation

	// ApprovalConfirmed means the side approved the current terms.
	ApprovalConfirmed

	// ApprovalCancelled means the side withdrew from the contract.
	ApprovalCancelled
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalUnknown:             "Unknown",
		ApprovalWaitingConfirmation: "WaitingConfirmation",
		ApprovalConfirmed:           "Confirmed",
		ApprovalCancelled:           "Cancelled",
	}
}

func getValidApprovalStatusStrings() map[ApprovalStatus]string {
	//nolint:exhaustive // ApprovalUnknown is intentionally excluded as it's invalid
	return map[ApprovalStatus]string{
		ApprovalWaitingConfirmation: "WaitingConfirmation",
		ApprovalConfirmed:           "Confirmed",
		ApprovalCancelled:           "Cancelled",
	}
}

// Validate checks that the ApprovalStatus is one of the defined states.
func (s ApprovalStatus) Validate() error {
	if _, ok := getValidApprovalStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("approval status is invalid",
			fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the human-readable name of the approval status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ApprovalStatusFromString parses an approval status from its textual form.
func ApprovalStatusFromString(value string) (ApprovalStatus, error) {
	for s, str := range getValidApprovalStatusStrings() {
		if str == value {
			return s, nil
		}
	}
	return ApprovalUnknown, errs.NewValueIsInvalidErrorWithCause("approval status is invalid",
		fmt.Errorf("%q is not a valid approval status", value))
}
