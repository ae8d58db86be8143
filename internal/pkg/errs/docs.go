// Package errs provides standardized error types for the medledger application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types:
//
// Validation errors, raised while constructing domain objects:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed bounds
//   - ObjectNotFoundError: For when an object (or list index) cannot be found
//
// Operation errors, raised while executing commands against the ledger:
//   - NotOwnerError: For when a custody transfer names a business that does not hold the item
//   - UnauthorizedError: For when the acting employee is not affiliated with the required business
//   - InvalidStateTransitionError: For when a lifecycle gate is not satisfied
//   - ConsistencyViolationError: For when an invariant would be broken (defensive)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, which keeps
// command results distinguishable: "nothing happened because not ready" is an
// InvalidStateTransitionError, never a silent no-op.
package errs
