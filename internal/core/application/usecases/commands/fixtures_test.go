package commands_test

import (
	"testing"
	"time"

	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/employee"
	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T, street string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(street, "Indianapolis", "IN", "USA", "46201")
	require.NoError(t, err)
	return addr
}

func testBusiness(t *testing.T, businessType business.Type, name string) *business.Business {
	t.Helper()
	b, err := business.NewBusiness(kernel.NewUUID(), businessType, name,
		"Pat Doe", "pat@"+name+".example", testAddress(t, name+" HQ"))
	require.NoError(t, err)
	return b
}

func testEmployee(t *testing.T, worksFor kernel.UUID) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(kernel.NewUUID(), "Sam", "Reyes",
		"sam.reyes@example.com", "", employee.Regular, worksFor)
	require.NoError(t, err)
	return e
}

// heldItem provisions a fresh item straight into the holder's inventory.
func heldItem(t *testing.T, holder *business.Business) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 500, "tablets",
		holder.ID(), holder.Address())
	require.NoError(t, err)
	require.NoError(t, holder.AcceptItem(it.ID()))
	return it
}

func testContractBetween(t *testing.T, buyerID, sellerID kernel.UUID) *contract.Contract {
	t.Helper()
	c, err := contract.NewContract(kernel.NewUUID(), buyerID, sellerID,
		time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}

func addShipment(t *testing.T, c *contract.Contract, carrierID kernel.UUID, items ...kernel.UUID) {
	t.Helper()
	s, err := contract.NewShipment(carrierID,
		testAddress(t, "1 Plant Way"), testAddress(t, "9 Depot Rd"), items)
	require.NoError(t, err)
	require.NoError(t, c.AddShipment(s))
}
