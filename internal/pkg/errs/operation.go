package errs

import "fmt"

// Sentinel errors for command execution failures. Use errors.Is to classify.
var (
	ErrNotOwner               = fmt.Errorf("not owner")
	ErrUnauthorized           = fmt.Errorf("unauthorized")
	ErrInvalidStateTransition = fmt.Errorf("invalid state transition")
	ErrConsistencyViolation   = fmt.Errorf("consistency violation")
)

// NotOwnerError indicates that a custody transfer named a source business
// that does not currently hold the item. The ledger refuses the transfer
// instead of silently splicing inventories.
type NotOwnerError struct {
	ItemID     string
	BusinessID string
	Cause      error
}

// NewNotOwnerError creates a NotOwnerError for the given item and claimed owner.
func NewNotOwnerError(itemID, businessID string) *NotOwnerError {
	return &NotOwnerError{ItemID: itemID, BusinessID: businessID}
}

func (e *NotOwnerError) Error() string {
	msg := fmt.Sprintf("%s: item %s is not held by business %s", ErrNotOwner, e.ItemID, e.BusinessID)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *NotOwnerError) Unwrap() error {
	return ErrNotOwner
}

// UnauthorizedError indicates that the acting employee is not affiliated with
// the business required to perform the operation.
type UnauthorizedError struct {
	EmployeeID string
	BusinessID string
	Cause      error
}

// NewUnauthorizedError creates an UnauthorizedError for the given employee and business.
func NewUnauthorizedError(employeeID, businessID string) *UnauthorizedError {
	return &UnauthorizedError{EmployeeID: employeeID, BusinessID: businessID}
}

func (e *UnauthorizedError) Error() string {
	msg := fmt.Sprintf("%s: employee %s does not work for business %s", ErrUnauthorized, e.EmployeeID, e.BusinessID)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidStateTransitionError indicates that a lifecycle gate was not
// satisfied: the requested transition is not legal from the current state.
type InvalidStateTransitionError struct {
	Subject string
	From    string
	To      string
	Cause   error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for the
// named subject (contract, shipment) and the attempted transition.
func NewInvalidStateTransitionError(subject, from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Subject: subject, From: from, To: to}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError
// carrying an underlying cause.
func NewInvalidStateTransitionErrorWithCause(subject, from, to string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Subject: subject, From: from, To: to, Cause: cause}
}

func (e *InvalidStateTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot go from %s to %s", ErrInvalidStateTransition, e.Subject, e.From, e.To)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// ConsistencyViolationError indicates that completing the operation would
// break a ledger invariant. These should be unreachable when the gates are
// enforced correctly; they exist to fail loudly instead of corrupting state.
type ConsistencyViolationError struct {
	Detail string
	Cause  error
}

// NewConsistencyViolationError creates a ConsistencyViolationError with a human-readable detail.
func NewConsistencyViolationError(detail string) *ConsistencyViolationError {
	return &ConsistencyViolationError{Detail: detail}
}

func (e *ConsistencyViolationError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrConsistencyViolation, e.Detail)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ConsistencyViolationError) Unwrap() error {
	return ErrConsistencyViolation
}
