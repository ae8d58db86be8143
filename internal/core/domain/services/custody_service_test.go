package services_test

import (
	"testing"

	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/core/domain/services"
	"medledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBusiness(t *testing.T, name, street string) *business.Business {
	t.Helper()
	addr, err := kernel.NewAddress(street, "Indianapolis", "IN", "USA", "46201")
	require.NoError(t, err)
	b, err := business.NewBusiness(kernel.NewUUID(), business.Manufacturer, name,
		"Alice Ray", "alice@"+name+".example", addr)
	require.NoError(t, err)
	return b
}

func ownedItem(t *testing.T, owner *business.Business) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 400, "g",
		owner.ID(), owner.Address())
	require.NoError(t, err)
	require.NoError(t, services.NewCustodyService().Provision(it, owner))
	return it
}

func TestCustodyService_Transfer(t *testing.T) {
	custody := services.NewCustodyService()

	t.Run("should move item between inventories and append owner address", func(t *testing.T) {
		seller := testBusiness(t, "lilly", "1 Plant Way")
		carrier := testBusiness(t, "ups", "9 Depot Rd")
		it := ownedItem(t, seller)

		require.NoError(t, custody.Transfer(it, seller, carrier, nil))

		assert.True(t, it.Owner().IsEqual(carrier.ID()))
		assert.False(t, seller.HasItem(it.ID()))
		assert.True(t, carrier.HasItem(it.ID()))
		eq, eqErr := it.CurrentLocation().IsEqual(carrier.Address())
		require.NoError(t, eqErr)
		assert.True(t, eq)
	})

	t.Run("should append explicit location when one is supplied", func(t *testing.T) {
		seller := testBusiness(t, "lilly", "1 Plant Way")
		buyer := testBusiness(t, "cvs", "3 Retail Ave")
		it := ownedItem(t, seller)

		dropOff, err := kernel.NewAddress("7 Dock St", "Columbus", "OH", "USA", "43004")
		require.NoError(t, err)

		require.NoError(t, custody.Transfer(it, seller, buyer, &dropOff))

		eq, eqErr := it.CurrentLocation().IsEqual(dropOff)
		require.NoError(t, eqErr)
		assert.True(t, eq)
	})

	t.Run("should fail with NotOwner when source does not hold the item", func(t *testing.T) {
		seller := testBusiness(t, "lilly", "1 Plant Way")
		stranger := testBusiness(t, "teva", "5 Other Rd")
		carrier := testBusiness(t, "ups", "9 Depot Rd")
		it := ownedItem(t, seller)

		err := custody.Transfer(it, stranger, carrier, nil)

		require.ErrorIs(t, err, errs.ErrNotOwner)
		assert.True(t, it.Owner().IsEqual(seller.ID()), "owner must be unchanged")
		assert.True(t, seller.HasItem(it.ID()))
		assert.False(t, carrier.HasItem(it.ID()))
		assert.Len(t, it.Locations(), 1, "no location may be appended")
	})

	t.Run("item is always held by exactly one business", func(t *testing.T) {
		seller := testBusiness(t, "lilly", "1 Plant Way")
		carrier := testBusiness(t, "ups", "9 Depot Rd")
		buyer := testBusiness(t, "cvs", "3 Retail Ave")
		it := ownedItem(t, seller)

		require.NoError(t, custody.Transfer(it, seller, carrier, nil))
		require.NoError(t, custody.Transfer(it, carrier, buyer, nil))

		holders := 0
		for _, b := range []*business.Business{seller, carrier, buyer} {
			if b.HasItem(it.ID()) {
				holders++
				assert.True(t, it.Owner().IsEqual(b.ID()))
			}
		}
		assert.Equal(t, 1, holders)
	})
}

func TestCustodyService_Provision(t *testing.T) {
	custody := services.NewCustodyService()

	t.Run("should place new item into owner inventory", func(t *testing.T) {
		owner := testBusiness(t, "lilly", "1 Plant Way")
		it, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 400, "g",
			owner.ID(), owner.Address())
		require.NoError(t, err)

		require.NoError(t, custody.Provision(it, owner))

		assert.True(t, owner.HasItem(it.ID()))
	})

	t.Run("should fail when item names a different owner", func(t *testing.T) {
		owner := testBusiness(t, "lilly", "1 Plant Way")
		other := testBusiness(t, "teva", "5 Other Rd")
		it, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 400, "g",
			other.ID(), other.Address())
		require.NoError(t, err)

		err = custody.Provision(it, owner)

		require.ErrorIs(t, err, errs.ErrConsistencyViolation)
		assert.False(t, owner.HasItem(it.ID()))
	})
}
