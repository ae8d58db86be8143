package employee_test

import (
	"testing"

	"medledger/internal/core/domain/model/employee"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	businessID := kernel.NewUUID()

	t.Run("should create valid employee", func(t *testing.T) {
		id := kernel.NewUUID()

		e, err := employee.NewEmployee(id, "Paulina", "Dylan",
			"paulina@cvs.example", "407-999-9993", employee.Regular, businessID)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(id))
		assert.Equal(t, employee.Regular, e.Type())
		assert.True(t, e.WorksFor().IsEqual(businessID))
	})

	t.Run("phone number is optional", func(t *testing.T) {
		_, err := employee.NewEmployee(kernel.NewUUID(), "Larry", "Merlo",
			"larry@cvs.example", "", employee.Admin, businessID)

		require.NoError(t, err)
	})

	t.Run("should fail with missing names", func(t *testing.T) {
		_, err := employee.NewEmployee(kernel.NewUUID(), "", "Merlo",
			"larry@cvs.example", "", employee.Admin, businessID)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid type", func(t *testing.T) {
		_, err := employee.NewEmployee(kernel.NewUUID(), "Larry", "Merlo",
			"larry@cvs.example", "", employee.UnknownType, businessID)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without employing business", func(t *testing.T) {
		var noBusiness kernel.UUID

		_, err := employee.NewEmployee(kernel.NewUUID(), "Larry", "Merlo",
			"larry@cvs.example", "", employee.Admin, noBusiness)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestEmployee_UpdateInfo(t *testing.T) {
	e, err := employee.NewEmployee(kernel.NewUUID(), "Paulina", "Dylan",
		"paulina@cvs.example", "407-999-9993", employee.Regular, kernel.NewUUID())
	require.NoError(t, err)

	e.UpdateInfo("", "", "p.dylan@cvs.example", "")

	assert.Equal(t, "Paulina", e.FirstName())
	assert.Equal(t, "p.dylan@cvs.example", e.Email())
	assert.Equal(t, "407-999-9993", e.PhoneNumber())
}

func TestEmployee_ChangeType(t *testing.T) {
	e, err := employee.NewEmployee(kernel.NewUUID(), "Paulina", "Dylan",
		"paulina@cvs.example", "", employee.Regular, kernel.NewUUID())
	require.NoError(t, err)

	require.NoError(t, e.ChangeType(employee.Admin))
	assert.Equal(t, employee.Admin, e.Type())

	require.Error(t, e.ChangeType(employee.UnknownType))
}

func TestEmployee_Validate(t *testing.T) {
	var zero employee.Employee

	require.ErrorIs(t, zero.Validate(), employee.ErrEmployeeIsNotConstructed)

	var nilEmployee *employee.Employee
	require.ErrorIs(t, nilEmployee.Validate(), employee.ErrEmployeeIsNotConstructed)
}
