// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"medledger/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BusinessRepoFactory provides access to the business repository within a transaction.
	BusinessRepoFactory interface {
		BusinessRepository() ports.BusinessRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// ItemTypeRepoFactory provides access to the item-type repository within a transaction.
	ItemTypeRepoFactory interface {
		ItemTypeRepository() ports.ItemTypeRepository
	}

	// ContractRepoFactory provides access to the contract repository within a transaction.
	ContractRepoFactory interface {
		ContractRepository() ports.ContractRepository
	}

	// BusinessUoW manages transactions for business-only operations.
	BusinessUoW interface {
		TxManager
		BusinessRepoFactory
	}

	// BusinessUoWFactory creates new business unit of work instances.
	BusinessUoWFactory interface {
		Create() BusinessUoW
	}

	// EmployeeUoW manages transactions for employee-only operations.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
	}

	// EmployeeUoWFactory creates new employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// StaffUoW manages transactions that touch a business roster together
	// with the employee records behind it.
	StaffUoW interface {
		TxManager
		BusinessRepoFactory
		EmployeeRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// CatalogUoW manages transactions for the item-type catalog.
	CatalogUoW interface {
		TxManager
		ItemTypeRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CustodyUoW manages transactions that move item custody between
	// business inventories: provisioning and manual transfers.
	CustodyUoW interface {
		TxManager
		BusinessRepoFactory
		ItemRepoFactory
		ItemTypeRepoFactory
	}

	// CustodyUoWFactory creates new custody unit of work instances.
	CustodyUoWFactory interface {
		Create() CustodyUoW
	}

	// ContractUoW manages transactions for contract lifecycle and term
	// edits, with access to the contracting businesses for validation.
	ContractUoW interface {
		TxManager
		ContractRepoFactory
		BusinessRepoFactory
	}

	// ContractUoWFactory creates new contract unit of work instances.
	ContractUoWFactory interface {
		Create() ContractUoW
	}

	// ApprovalUoW manages transactions for per-side contract decisions,
	// which resolve the acting employee to their business.
	ApprovalUoW interface {
		TxManager
		ContractRepoFactory
		EmployeeRepoFactory
	}

	// ApprovalUoWFactory creates new approval unit of work instances.
	ApprovalUoWFactory interface {
		Create() ApprovalUoW
	}

	// UoW manages transactions across every aggregate. Used by the
	// shipment commands, whose custody moves touch a contract, several
	// businesses and N items in one atomic unit.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   contractRepo := uow.ContractRepository()
	//   itemRepo := uow.ItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		BusinessRepoFactory
		EmployeeRepoFactory
		ItemRepoFactory
		ItemTypeRepoFactory
		ContractRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
