package repository

import (
	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer y su
// historial de movimientos (DIP). Los listados de entidades vienen ordenados
// por nombre y los de movimientos por fecha ascendente.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetForUpdate obtiene el cliente bloqueando su fila (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	UpdateBalance(id string, balance decimal.Decimal) error
	// Delete elimina el cliente; la FK con ON DELETE CASCADE arrastra sus
	// movimientos. Devuelve domain.ErrNotFound si no existe.
	Delete(id string) error

	CreateMovement(movement *entity.CustomerMovement) error
	ListMovements(customerID string) ([]entity.CustomerMovement, error)
	ListAllMovements() ([]entity.CustomerMovement, error)
}
