package ports

import (
	"context"

	"medledger/internal/core/domain/model/employee"
	"medledger/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for employee
// aggregates.
type EmployeeRepository interface {
	// Add persists a new employee aggregate to storage.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Update persists changes to an existing employee aggregate.
	Update(ctx context.Context, aggregate *employee.Employee) error

	// Get retrieves an employee aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// Delete removes an employee record. Used when a business removes a
	// person from its roster; the record does not survive the membership.
	Delete(ctx context.Context, id kernel.UUID) error
}
