package services

import (
	"errors"
	"fmt"

	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
)

// CustodyService is the domain service through which every custody change
// goes: item provisioning, shipment acceptance (seller to carrier), arrival
// confirmation (carrier to buyer) and manual ownership edits. Funnelling all
// of them through one primitive keeps the single-ownership invariant intact —
// an item is always in exactly one business's inventory, and that business is
// its current owner.
//
// Business rules:
//   - Transfers require the source business to actually hold the item;
//     a mismatched source fails with NotOwner before anything is touched.
//   - The item's location log gains one entry per transfer: the supplied
//     new location, or the receiving business's address when none is given.
//   - No other component may splice inventories directly.
//
// Example usage:
//
//	custody := services.NewCustodyService()
//	if err := custody.Transfer(it, seller, carrier, nil); err != nil {
//	    // NotOwner or validation failure; nothing was changed
//	    return err
//	}
type CustodyService struct{}

// NewCustodyService creates a new CustodyService instance.
func NewCustodyService() CustodyService {
	return CustodyService{}
}

// Transfer moves an item from one business's inventory to another's, updates
// the item's owner and appends its new location. newLocation may be nil, in
// which case the receiving business's address is appended.
//
// Fails with NotOwner when the item is not held by the source business, with
// ConsistencyViolation when the inventories disagree with the item's owner
// reference. The caller persists all three aggregates in one transaction.
func (s CustodyService) Transfer(
	it *item.Item,
	from *business.Business,
	to *business.Business,
	newLocation *kernel.Address,
) error {
	if err := errors.Join(it.Validate(), from.Validate(), to.Validate()); err != nil {
		return err
	}

	if !it.Owner().IsEqual(from.ID()) || !from.HasItem(it.ID()) {
		return errs.NewNotOwnerError(it.ID().String(), from.ID().String())
	}

	if err := from.SurrenderItem(it.ID()); err != nil {
		return err
	}
	if err := to.AcceptItem(it.ID()); err != nil {
		return err
	}

	location := to.Address()
	if newLocation != nil {
		location = *newLocation
	}

	return it.RecordTransfer(to.ID(), location)
}

// Provision places a freshly created item into its first owner's inventory.
// The item must already name that business as its owner.
func (s CustodyService) Provision(it *item.Item, owner *business.Business) error {
	if err := errors.Join(it.Validate(), owner.Validate()); err != nil {
		return err
	}

	if !it.Owner().IsEqual(owner.ID()) {
		return errs.NewConsistencyViolationError(
			fmt.Sprintf("item %s is owned by %s, not by provisioning business %s",
				it.ID(), it.Owner(), owner.ID()))
	}

	return owner.AcceptItem(it.ID())
}
