package repository

import (
	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/domain/entity"
)

// StaffRepository define el puerto de persistencia para StaffMember y su
// historial de deuda (DIP).
type StaffRepository interface {
	Create(staff *entity.StaffMember) error
	GetByID(id string) (*entity.StaffMember, error)
	// GetForUpdate obtiene el colaborador bloqueando su fila; solo tiene
	// sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.StaffMember, error)
	List() ([]*entity.StaffMember, error)
	UpdateOwedAmount(id string, owed decimal.Decimal) error
	Delete(id string) error

	CreateMovement(movement *entity.StaffMovement) error
	ListMovements(staffID string) ([]entity.StaffMovement, error)
	ListAllMovements() ([]entity.StaffMovement, error)
}
