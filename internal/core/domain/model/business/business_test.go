package business_test

import (
	"testing"

	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("One Post Street", "San Francisco", "CA", "USA", "94104")
	require.NoError(t, err)
	return addr
}

func TestNewBusiness(t *testing.T) {
	addr := validAddress(t)

	t.Run("should create valid business", func(t *testing.T) {
		id := kernel.NewUUID()

		b, err := business.NewBusiness(id, business.Carrier, "McKesson",
			"John Hammergren", "john@mckesson.example", addr)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(id))
		assert.Equal(t, business.Carrier, b.Type())
		assert.Equal(t, "McKesson", b.Name())
		assert.Empty(t, b.Employees())
		assert.Empty(t, b.Inventory())
	})

	t.Run("should fail with invalid type", func(t *testing.T) {
		_, err := business.NewBusiness(kernel.NewUUID(), business.UnknownType,
			"McKesson", "John", "john@mckesson.example", addr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "business type is invalid")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := business.NewBusiness(kernel.NewUUID(), business.Manufacturer,
			"", "Flemming", "flemming@shire.example", addr)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with missing point of contact", func(t *testing.T) {
		_, err := business.NewBusiness(kernel.NewUUID(), business.Distributor,
			"CVS Pharmacy", "", "", addr)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestBusiness_Roster(t *testing.T) {
	addr := validAddress(t)
	b, err := business.NewBusiness(kernel.NewUUID(), business.Distributor,
		"CVS Pharmacy", "Larry Merlo", "larry@cvs.example", addr)
	require.NoError(t, err)

	employeeID := kernel.NewUUID()

	t.Run("add employee", func(t *testing.T) {
		require.NoError(t, b.AddEmployee(employeeID))
		assert.True(t, b.HasEmployee(employeeID))
	})

	t.Run("duplicate employee is a consistency violation", func(t *testing.T) {
		err := b.AddEmployee(employeeID)

		require.ErrorIs(t, err, errs.ErrConsistencyViolation)
	})

	t.Run("remove employee", func(t *testing.T) {
		require.NoError(t, b.RemoveEmployee(employeeID))
		assert.False(t, b.HasEmployee(employeeID))
	})

	t.Run("removing unknown employee fails", func(t *testing.T) {
		err := b.RemoveEmployee(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestBusiness_Inventory(t *testing.T) {
	addr := validAddress(t)
	b, err := business.NewBusiness(kernel.NewUUID(), business.Manufacturer,
		"Shire Pharmaceuticals", "Flemming Ornskov", "flemming@shire.example", addr)
	require.NoError(t, err)

	itemID := kernel.NewUUID()

	t.Run("accept item", func(t *testing.T) {
		require.NoError(t, b.AcceptItem(itemID))
		assert.True(t, b.HasItem(itemID))
		assert.Equal(t, []kernel.UUID{itemID}, b.Inventory())
	})

	t.Run("accepting a held item is a consistency violation", func(t *testing.T) {
		err := b.AcceptItem(itemID)

		require.ErrorIs(t, err, errs.ErrConsistencyViolation)
	})

	t.Run("surrender item", func(t *testing.T) {
		require.NoError(t, b.SurrenderItem(itemID))
		assert.False(t, b.HasItem(itemID))
	})

	t.Run("surrendering an absent item is a consistency violation", func(t *testing.T) {
		err := b.SurrenderItem(itemID)

		require.ErrorIs(t, err, errs.ErrConsistencyViolation)
	})

	t.Run("inventory order is preserved", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, b.AcceptItem(first))
		require.NoError(t, b.AcceptItem(second))

		assert.Equal(t, []kernel.UUID{first, second}, b.Inventory())
	})
}

func TestRestoreBusiness(t *testing.T) {
	addr := validAddress(t)
	employees := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	inventory := []kernel.UUID{kernel.NewUUID()}

	b, err := business.RestoreBusiness(kernel.NewUUID(), business.Carrier,
		"McKesson", "John Hammergren", "john@mckesson.example", addr, employees, inventory)

	require.NoError(t, err)
	assert.Equal(t, employees, b.Employees())
	assert.Equal(t, inventory, b.Inventory())
}

func TestBusiness_UpdateInfo(t *testing.T) {
	addr := validAddress(t)
	b, err := business.NewBusiness(kernel.NewUUID(), business.Distributor,
		"CVS Pharmacy", "Larry Merlo", "larry@cvs.example", addr)
	require.NoError(t, err)

	newAddr, _ := kernel.NewAddress("4974 N Alafaya Trail", "Orlando", "FL", "USA", "32826")

	require.NoError(t, b.UpdateInfo("CVS-2 Pharmacy", "", "josh@cvs.example", &newAddr))

	assert.Equal(t, "CVS-2 Pharmacy", b.Name())
	assert.Equal(t, "Larry Merlo", b.PointOfContactName())
	assert.Equal(t, "josh@cvs.example", b.PointOfContactEmail())
	assert.Equal(t, newAddr, b.Address())
}

func TestBusinessTypeFromString(t *testing.T) {
	for _, name := range []string{"Manufacturer", "Carrier", "Distributor"} {
		parsed, err := business.TypeFromString(name)

		require.NoError(t, err)
		assert.Equal(t, name, parsed.String())
	}

	_, err := business.TypeFromString("Wholesaler")
	require.Error(t, err)
}
