// Package guard implements the constructor-guard pattern used by domain
// value objects and commands to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its designated
// constructor. Embedding a guard lets Validate distinguish properly constructed
// instances from zero values, keeping domain invariants enforceable.
//
// Example:
//
//	type Quantity struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewQuantity(amount int) (Quantity, error) {
//	    if amount <= 0 {
//	        return Quantity{}, errors.New("amount must be positive")
//	    }
//	    return Quantity{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quantity) Validate() error {
//	    return q.guard.Validate(ErrQuantityNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
