// Package item contains the Item aggregate — a physical unit of tracked
// medication with a custody history — and the immutable ItemType catalog
// entry it references.
//
// An item's owner changes only through the custody service, which keeps the
// owner reference and the owning business's inventory in lockstep. The
// location log is append-only: the last entry is the current location and
// nothing is ever removed from it. Items are never deleted once created.
package item

import (
	"errors"
	"slices"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// Domain errors for item operations.
var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrUnitOfMeasureIsRequired is returned when the unit of measure is missing.
	ErrUnitOfMeasureIsRequired = errs.NewValueIsRequiredError("unit of measure")
	// ErrLocationLogIsEmpty is returned when restoring an item without any location history.
	ErrLocationLogIsEmpty = errs.NewValueIsRequiredError("location log must have at least one entry")
)

// Item represents a physical unit of medication moving through the supply
// chain. The amount/unit pair describes the dose it carries (e.g. 400 g).
type Item struct {
	id kernel.UUID
	// itemTypeID references the ItemType catalog entry
	itemTypeID kernel.UUID
	// amount of medication, expressed in unitOfMeasure
	amount        int
	unitOfMeasure string
	// currentOwner is the business holding custody; mirrored by that
	// business's inventory
	currentOwner kernel.UUID
	// locations is the append-only custody trail; the last entry is the
	// current location
	locations []kernel.Address
	guard     guard.ConstructorGuard
}

// NewItem provisions a new item into the custody of its first owner.
// The initial location seeds the location log.
func NewItem(
	id kernel.UUID,
	itemTypeID kernel.UUID,
	amount int,
	unitOfMeasure string,
	owner kernel.UUID,
	initialLocation kernel.Address,
) (*Item, error) {
	it := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setItemTypeID(itemTypeID),
		it.setAmount(amount),
		it.setUnitOfMeasure(unitOfMeasure),
		it.setOwner(owner),
		initialLocation.Validate(),
	); err != nil {
		return nil, err
	}

	it.locations = []kernel.Address{initialLocation}
	return it, nil
}

// RestoreItem reconstructs an Item from persistent storage with its full
// location history in persisted order.
func RestoreItem(
	id kernel.UUID,
	itemTypeID kernel.UUID,
	amount int,
	unitOfMeasure string,
	owner kernel.UUID,
	locations []kernel.Address,
) (*Item, error) {
	if len(locations) == 0 {
		return nil, ErrLocationLogIsEmpty
	}

	it := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setItemTypeID(itemTypeID),
		it.setAmount(amount),
		it.setUnitOfMeasure(unitOfMeasure),
		it.setOwner(owner),
	); err != nil {
		return nil, err
	}

	for _, loc := range locations {
		if err := loc.Validate(); err != nil {
			return nil, err
		}
	}

	it.locations = slices.Clone(locations)
	return it, nil
}

// Validate checks that the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the unique identifier of the item.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ItemTypeID returns the catalog entry this item is a unit of.
func (i *Item) ItemTypeID() kernel.UUID {
	return i.itemTypeID
}

// Amount returns the amount of medication, in UnitOfMeasure units.
func (i *Item) Amount() int {
	return i.amount
}

// UnitOfMeasure returns the unit the amount is expressed in.
func (i *Item) UnitOfMeasure() string {
	return i.unitOfMeasure
}

// Owner returns the id of the business currently holding custody.
func (i *Item) Owner() kernel.UUID {
	return i.currentOwner
}

// Locations returns a copy of the append-only location log.
func (i *Item) Locations() []kernel.Address {
	return slices.Clone(i.locations)
}

// CurrentLocation returns the last entry of the location log.
func (i *Item) CurrentLocation() kernel.Address {
	return i.locations[len(i.locations)-1]
}

// RecordTransfer moves custody to a new owner and appends the item's new
// location. Only the custody service calls this; it has already removed the
// item from the old owner's inventory and added it to the new owner's.
func (i *Item) RecordTransfer(newOwner kernel.UUID, location kernel.Address) error {
	if err := errors.Join(newOwner.Validate(), location.Validate()); err != nil {
		return err
	}

	i.currentOwner = newOwner
	i.locations = append(i.locations, location)
	return nil
}

// AppendLocation records a movement that does not change custody, such as a
// carrier repositioning a shipment between warehouses.
func (i *Item) AppendLocation(location kernel.Address) error {
	if err := location.Validate(); err != nil {
		return err
	}

	i.locations = append(i.locations, location)
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setItemTypeID(itemTypeID kernel.UUID) error {
	if err := itemTypeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemTypeId", err)
	}
	i.itemTypeID = itemTypeID
	return nil
}

func (i *Item) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, int(^uint(0)>>1))
	}
	i.amount = amount
	return nil
}

func (i *Item) setUnitOfMeasure(unitOfMeasure string) error {
	if unitOfMeasure == "" {
		return ErrUnitOfMeasureIsRequired
	}
	i.unitOfMeasure = unitOfMeasure
	return nil
}

func (i *Item) setOwner(owner kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("currentOwner", err)
	}
	i.currentOwner = owner
	return nil
}
