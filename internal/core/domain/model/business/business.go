package business

import (
	"errors"
	"slices"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// Domain errors for business operations.
var (
	// ErrBusinessIsNotConstructed is returned when using an improperly initialized Business.
	ErrBusinessIsNotConstructed = errors.New("Business must be created via NewBusiness constructor")
	// ErrNameIsRequired is returned when attempting to create a business without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPointOfContactIsRequired is returned when the point-of-contact name or email is missing.
	ErrPointOfContactIsRequired = errs.NewValueIsRequiredError("point of contact")
)

// Business represents a party in the pharmaceutical supply chain.
// It is an aggregate root that manages the party's identity, staff roster,
// and the inventory of items it currently holds.
//
// Business rules:
//   - Must have a valid UUID, a valid type, a non-empty name, and a
//     point of contact with name and email
//   - The staff roster is an ordered list of employee ids without duplicates
//   - The inventory is an ordered list of item ids without duplicates and is
//     mutated only by the custody service (see package doc)
//
// Example:
//
//	addr, _ := kernel.NewAddress("One Post Street", "San Francisco", "CA", "USA", "94104")
//	b, err := business.NewBusiness(kernel.NewUUID(), business.Carrier,
//	    "McKesson", "John Hammergren", "john@mckesson.example", addr)
type Business struct {
	// id uniquely identifies the business
	id kernel.UUID
	// businessType fixes the supply-chain role (manufacturer, carrier, distributor)
	businessType Type
	// name is the registered company name
	name string
	// pocName and pocEmail identify the point of contact
	pocName  string
	pocEmail string
	// address is the business premises; new custody entries default to it
	address kernel.Address
	// employees is the ordered staff roster (employee ids)
	employees []kernel.UUID
	// inventory is the ordered list of item ids currently held
	inventory []kernel.UUID
	// guard ensures the business was properly constructed
	guard guard.ConstructorGuard
}

// NewBusiness creates a new Business with an empty roster and inventory.
// All parameters are validated; errors are aggregated via errors.Join.
func NewBusiness(
	id kernel.UUID,
	businessType Type,
	name string,
	pocName string,
	pocEmail string,
	address kernel.Address,
) (*Business, error) {
	b := &Business{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setType(businessType),
		b.setName(name),
		b.setPointOfContact(pocName, pocEmail),
		b.setAddress(address),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBusiness reconstructs a Business aggregate from persistent storage,
// including its roster and inventory in their persisted order. The restored
// aggregate behaves identically to one built through normal domain operations.
func RestoreBusiness(
	id kernel.UUID,
	businessType Type,
	name string,
	pocName string,
	pocEmail string,
	address kernel.Address,
	employees []kernel.UUID,
	inventory []kernel.UUID,
) (*Business, error) {
	b := &Business{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setType(businessType),
		b.setName(name),
		b.setPointOfContact(pocName, pocEmail),
		b.setAddress(address),
	); err != nil {
		return nil, err
	}

	b.employees = slices.Clone(employees)
	b.inventory = slices.Clone(inventory)
	return b, nil
}

// Validate checks that the Business was built through a constructor.
func (b *Business) Validate() error {
	if b == nil {
		return ErrBusinessIsNotConstructed
	}
	return b.guard.Validate(ErrBusinessIsNotConstructed)
}

// IsEqual compares two businesses by their unique identifiers.
func (b *Business) IsEqual(other *Business) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the unique identifier of the business.
func (b *Business) ID() kernel.UUID {
	return b.id
}

// Type returns the supply-chain role of the business.
func (b *Business) Type() Type {
	return b.businessType
}

// Name returns the registered company name.
func (b *Business) Name() string {
	return b.name
}

// PointOfContactName returns the contact person's name.
func (b *Business) PointOfContactName() string {
	return b.pocName
}

// PointOfContactEmail returns the contact person's email.
func (b *Business) PointOfContactEmail() string {
	return b.pocEmail
}

// Address returns the business premises address.
func (b *Business) Address() kernel.Address {
	return b.address
}

// Employees returns a copy of the ordered staff roster.
func (b *Business) Employees() []kernel.UUID {
	return slices.Clone(b.employees)
}

// Inventory returns a copy of the ordered list of held item ids.
func (b *Business) Inventory() []kernel.UUID {
	return slices.Clone(b.inventory)
}

// UpdateInfo changes the mutable descriptive fields of the business.
// Empty strings leave the corresponding field untouched; a nil address
// keeps the current premises.
func (b *Business) UpdateInfo(name, pocName, pocEmail string, address *kernel.Address) error {
	if name != "" {
		b.name = name
	}
	if pocName != "" {
		b.pocName = pocName
	}
	if pocEmail != "" {
		b.pocEmail = pocEmail
	}
	if address != nil {
		if err := address.Validate(); err != nil {
			return err
		}
		b.address = *address
	}
	return nil
}

// HasEmployee reports whether the employee id is on the staff roster.
func (b *Business) HasEmployee(employeeID kernel.UUID) bool {
	return slices.ContainsFunc(b.employees, employeeID.IsEqual)
}

// AddEmployee appends an employee id to the staff roster.
// Adding an id already on the roster fails with a consistency violation.
func (b *Business) AddEmployee(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	if b.HasEmployee(employeeID) {
		return errs.NewConsistencyViolationError(
			"employee " + employeeID.String() + " already works for business " + b.id.String())
	}

	b.employees = append(b.employees, employeeID)
	return nil
}

// RemoveEmployee removes an employee id from the staff roster.
// Removing an id not on the roster fails with ObjectNotFound.
func (b *Business) RemoveEmployee(employeeID kernel.UUID) error {
	idx := slices.IndexFunc(b.employees, employeeID.IsEqual)
	if idx < 0 {
		return errs.NewObjectNotFoundError("employeeId", employeeID.String())
	}

	b.employees = slices.Delete(b.employees, idx, idx+1)
	return nil
}

// HasItem reports whether the item id is in the inventory.
func (b *Business) HasItem(itemID kernel.UUID) bool {
	return slices.ContainsFunc(b.inventory, itemID.IsEqual)
}

// AcceptItem appends an item id to the inventory. Called by the custody
// service when the business gains custody; a duplicate id means the ledger
// and the inventory already disagree, so it fails loudly.
func (b *Business) AcceptItem(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	if b.HasItem(itemID) {
		return errs.NewConsistencyViolationError(
			"item " + itemID.String() + " already in inventory of business " + b.id.String())
	}

	b.inventory = append(b.inventory, itemID)
	return nil
}

// SurrenderItem removes an item id from the inventory. Called by the custody
// service when the business loses custody; an absent id means the ledger and
// the inventory already disagree, so it fails loudly.
func (b *Business) SurrenderItem(itemID kernel.UUID) error {
	idx := slices.IndexFunc(b.inventory, itemID.IsEqual)
	if idx < 0 {
		return errs.NewConsistencyViolationError(
			"item " + itemID.String() + " not in inventory of business " + b.id.String())
	}

	b.inventory = slices.Delete(b.inventory, idx, idx+1)
	return nil
}

func (b *Business) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Business) setType(businessType Type) error {
	if err := businessType.Validate(); err != nil {
		return err
	}
	b.businessType = businessType
	return nil
}

func (b *Business) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	b.name = name
	return nil
}

func (b *Business) setPointOfContact(pocName, pocEmail string) error {
	if pocName == "" || pocEmail == "" {
		return ErrPointOfContactIsRequired
	}
	b.pocName = pocName
	b.pocEmail = pocEmail
	return nil
}

func (b *Business) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	b.address = address
	return nil
}
