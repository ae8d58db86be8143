package item

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrItemTypeIsNotConstructed is returned when using an improperly initialized ItemType.
var ErrItemTypeIsNotConstructed = errors.New("ItemType must be created via NewItemType constructor")

// ItemType is an immutable catalog entry naming a medication
// (e.g. "Adderall"). Items reference it; contracts request quantities of it.
type ItemType struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewItemType creates a catalog entry with the given name.
func NewItemType(id kernel.UUID, name string) (*ItemType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &ItemType{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreItemType reconstructs a catalog entry from persistent storage.
func RestoreItemType(id kernel.UUID, name string) (*ItemType, error) {
	return NewItemType(id, name)
}

// Validate checks that the ItemType was built through a constructor.
func (t *ItemType) Validate() error {
	if t == nil {
		return ErrItemTypeIsNotConstructed
	}
	return t.guard.Validate(ErrItemTypeIsNotConstructed)
}

// ID returns the unique identifier of the catalog entry.
func (t *ItemType) ID() kernel.UUID {
	return t.id
}

// Name returns the medication name.
func (t *ItemType) Name() string {
	return t.name
}
