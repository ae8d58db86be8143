package contract

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrItemRequestIsNotConstructed is returned when using an improperly
// initialized ItemRequest.
var ErrItemRequestIsNotConstructed = errs.NewValueIsRequiredError(
	"item request must be created via NewItemRequest constructor")

// ItemRequest is an ordered line entry of a contract: a requested item type
// and the quantity of it. Identified by its position in the contract's list.
type ItemRequest struct {
	itemTypeID kernel.UUID
	quantity   int
	guard      guard.ConstructorGuard
}

// NewItemRequest creates a line entry for the given item type and quantity.
func NewItemRequest(itemTypeID kernel.UUID, quantity int) (ItemRequest, error) {
	if err := itemTypeID.Validate(); err != nil {
		return ItemRequest{}, errs.NewValueIsRequiredErrorWithCause("itemTypeId", err)
	}
	if quantity <= 0 {
		return ItemRequest{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}

	return ItemRequest{
		itemTypeID: itemTypeID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the ItemRequest was built through NewItemRequest.
func (r ItemRequest) Validate() error {
	return r.guard.Validate(ErrItemRequestIsNotConstructed)
}

// ItemTypeID returns the requested item type.
func (r ItemRequest) ItemTypeID() kernel.UUID {
	return r.itemTypeID
}

// Quantity returns the requested quantity.
func (r ItemRequest) Quantity() int {
	return r.quantity
}

// IsEqual compares two item requests field by field.
func (r ItemRequest) IsEqual(other ItemRequest) (bool, error) {
	if err := errors.Join(r.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return r.itemTypeID.IsEqual(other.itemTypeID) && r.quantity == other.quantity, nil
}
