// Package employeerepo persists the Employee aggregate as a flat record.
package employeerepo

import (
	"medledger/internal/core/domain/model/employee"
	"medledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO represents the database structure for persisting employees.
type EmployeeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"type:varchar(255);not null"`
	LastName    string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	PhoneNumber string    `gorm:"type:varchar(64)"`
	Type        string    `gorm:"type:varchar(32);not null"`
	WorksFor    uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName overrides GORM's default naming to use "employees".
func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(aggregate *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:          aggregate.ID().Bytes(),
		FirstName:   aggregate.FirstName(),
		LastName:    aggregate.LastName(),
		Email:       aggregate.Email(),
		PhoneNumber: aggregate.PhoneNumber(),
		Type:        aggregate.Type().String(),
		WorksFor:    aggregate.WorksFor().Bytes(),
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	worksFor, err := kernel.UUIDFromBytes(dto.WorksFor[:])
	if err != nil {
		return nil, err
	}

	employeeType, err := employee.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	return employee.RestoreEmployee(id, dto.FirstName, dto.LastName,
		dto.Email, dto.PhoneNumber, employeeType, worksFor)
}
