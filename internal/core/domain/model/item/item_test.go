package item_test

import (
	"testing"

	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factoryAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Plant Way", "Indianapolis", "IN", "USA", "46201")
	require.NoError(t, err)
	return addr
}

func warehouseAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("9 Depot Rd", "Columbus", "OH", "USA", "43004")
	require.NoError(t, err)
	return addr
}

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		id := kernel.NewUUID()
		typeID := kernel.NewUUID()
		owner := kernel.NewUUID()
		origin := factoryAddress(t)

		it, err := item.NewItem(id, typeID, 400, "g", owner, origin)

		require.NoError(t, err)
		require.NoError(t, it.Validate())
		assert.True(t, it.ID().IsEqual(id))
		assert.True(t, it.ItemTypeID().IsEqual(typeID))
		assert.Equal(t, 400, it.Amount())
		assert.Equal(t, "g", it.UnitOfMeasure())
		assert.True(t, it.Owner().IsEqual(owner))
		assert.Equal(t, []kernel.Address{origin}, it.Locations())
		eq, eqErr := it.CurrentLocation().IsEqual(origin)
		require.NoError(t, eqErr)
		assert.True(t, eq)
	})

	t.Run("should fail with non-positive amount", func(t *testing.T) {
		_, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 0, "g",
			kernel.NewUUID(), factoryAddress(t))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with empty unit of measure", func(t *testing.T) {
		_, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 400, "",
			kernel.NewUUID(), factoryAddress(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without owner", func(t *testing.T) {
		var noOwner kernel.UUID

		_, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 400, "g",
			noOwner, factoryAddress(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore with full location history", func(t *testing.T) {
		history := []kernel.Address{factoryAddress(t), warehouseAddress(t)}

		it, err := item.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 400, "g",
			kernel.NewUUID(), history)

		require.NoError(t, err)
		assert.Equal(t, history, it.Locations())
		eq, eqErr := it.CurrentLocation().IsEqual(history[1])
		require.NoError(t, eqErr)
		assert.True(t, eq)
	})

	t.Run("should fail without locations", func(t *testing.T) {
		_, err := item.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 400, "g",
			kernel.NewUUID(), nil)

		require.ErrorIs(t, err, item.ErrLocationLogIsEmpty)
	})
}

func TestItem_RecordTransfer(t *testing.T) {
	it, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 400, "g",
		kernel.NewUUID(), factoryAddress(t))
	require.NoError(t, err)

	newOwner := kernel.NewUUID()
	destination := warehouseAddress(t)

	require.NoError(t, it.RecordTransfer(newOwner, destination))

	assert.True(t, it.Owner().IsEqual(newOwner))
	assert.Len(t, it.Locations(), 2)
	eq, eqErr := it.CurrentLocation().IsEqual(destination)
	require.NoError(t, eqErr)
	assert.True(t, eq)

	t.Run("should keep location log append-only across transfers", func(t *testing.T) {
		back := factoryAddress(t)
		require.NoError(t, it.RecordTransfer(kernel.NewUUID(), back))

		assert.Len(t, it.Locations(), 3)
		eq, eqErr := it.CurrentLocation().IsEqual(back)
		require.NoError(t, eqErr)
		assert.True(t, eq)
	})

	t.Run("should reject invalid owner", func(t *testing.T) {
		var noOwner kernel.UUID

		require.Error(t, it.RecordTransfer(noOwner, warehouseAddress(t)))
	})
}

func TestItem_AppendLocation(t *testing.T) {
	owner := kernel.NewUUID()
	it, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 400, "g",
		owner, factoryAddress(t))
	require.NoError(t, err)

	stop := warehouseAddress(t)
	require.NoError(t, it.AppendLocation(stop))

	assert.True(t, it.Owner().IsEqual(owner), "custody must not change")
	eq, eqErr := it.CurrentLocation().IsEqual(stop)
	require.NoError(t, eqErr)
	assert.True(t, eq)
}

func TestItem_Validate(t *testing.T) {
	var zero item.Item
	require.ErrorIs(t, zero.Validate(), item.ErrItemIsNotConstructed)

	var nilItem *item.Item
	require.ErrorIs(t, nilItem.Validate(), item.ErrItemIsNotConstructed)
}

func TestNewItemType(t *testing.T) {
	t.Run("should create valid item type", func(t *testing.T) {
		id := kernel.NewUUID()

		it, err := item.NewItemType(id, "Adderall")

		require.NoError(t, err)
		require.NoError(t, it.Validate())
		assert.True(t, it.ID().IsEqual(id))
		assert.Equal(t, "Adderall", it.Name())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := item.NewItemType(kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
