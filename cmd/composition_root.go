package cmd

import (
	"medledger/internal/adapters/out/postgres"
	"medledger/internal/core/application/usecases/commands"
	"medledger/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateBusinessCommandHandler() commands.CreateBusinessCommandHandler {
	var f commands.BusinessUoWFactory = FuncBusinessUoWFactory(func() commands.BusinessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBusinessCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateBusinessInfoCommandHandler() commands.UpdateBusinessInfoCommandHandler {
	var f commands.BusinessUoWFactory = FuncBusinessUoWFactory(func() commands.BusinessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBusinessInfoCommandHandler(f)
}

func (c *CompositionRoot) CreateAddEmployeeToBusinessCommandHandler() commands.AddEmployeeToBusinessCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddEmployeeToBusinessCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveEmployeeFromBusinessCommandHandler() commands.RemoveEmployeeFromBusinessCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveEmployeeFromBusinessCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateEmployeeInfoCommandHandler() commands.UpdateEmployeeInfoCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateEmployeeInfoCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateEmployeeTypeCommandHandler() commands.UpdateEmployeeTypeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateEmployeeTypeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateItemTypeCommandHandler() commands.CreateItemTypeCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateItemTypeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	var f commands.CustodyUoWFactory = FuncCustodyUoWFactory(func() commands.CustodyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateItemCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferItemOwnershipCommandHandler() commands.TransferItemOwnershipCommandHandler {
	var f commands.CustodyUoWFactory = FuncCustodyUoWFactory(func() commands.CustodyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferItemOwnershipCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateContractCommandHandler() commands.CreateContractCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateContractCommandHandler(f)
}

func (c *CompositionRoot) CreateAddItemRequestsCommandHandler() commands.AddItemRequestsCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemRequestsCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveItemRequestsCommandHandler() commands.RemoveItemRequestsCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemRequestsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateItemRequestCommandHandler() commands.UpdateItemRequestCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateItemRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAddShipmentCommandHandler() commands.AddShipmentCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveShipmentsCommandHandler() commands.RemoveShipmentsCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveShipmentsCommandHandler(f)
}

func (c *CompositionRoot) CreateSetShipmentCarrierCommandHandler() commands.SetShipmentCarrierCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetShipmentCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateArrivalTimeCommandHandler() commands.UpdateArrivalTimeCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateArrivalTimeCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveContractCommandHandler() commands.ApproveContractCommandHandler {
	var f commands.ApprovalUoWFactory = FuncApprovalUoWFactory(func() commands.ApprovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveContractCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelContractCommandHandler() commands.CancelContractCommandHandler {
	var f commands.ApprovalUoWFactory = FuncApprovalUoWFactory(func() commands.ApprovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelContractCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteContractCommandHandler() commands.CompleteContractCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteContractCommandHandler(f)
}

func (c *CompositionRoot) CreateCarrierTransitionCommandHandler() commands.CarrierTransitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCarrierTransitionCommandHandler(f)
}

func (c *CompositionRoot) CreateBuyerArrivalApprovalCommandHandler() commands.BuyerArrivalApprovalCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewBuyerArrivalApprovalCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBusinessInventoryQueryHandler() queries.GetBusinessInventoryQueryHandler {
	return queries.NewGetBusinessInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenContractsQueryHandler() queries.GetOpenContractsQueryHandler {
	return queries.NewGetOpenContractsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemMovementHistoryQueryHandler() queries.GetItemMovementHistoryQueryHandler {
	return queries.NewGetItemMovementHistoryQueryHandler(c.gormDB)
}

type FuncBusinessUoWFactory func() commands.BusinessUoW

func (f FuncBusinessUoWFactory) Create() commands.BusinessUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCustodyUoWFactory func() commands.CustodyUoW

func (f FuncCustodyUoWFactory) Create() commands.CustodyUoW {
	return f()
}

type FuncContractUoWFactory func() commands.ContractUoW

func (f FuncContractUoWFactory) Create() commands.ContractUoW {
	return f()
}

type FuncApprovalUoWFactory func() commands.ApprovalUoW

func (f FuncApprovalUoWFactory) Create() commands.ApprovalUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
