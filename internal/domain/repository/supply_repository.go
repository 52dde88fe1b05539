package repository

import (
	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/domain/entity"
)

// SupplyRepository define el puerto de persistencia para SupplyItem y su
// historial de movimientos (DIP).
type SupplyRepository interface {
	Create(item *entity.SupplyItem) error
	GetByID(id string) (*entity.SupplyItem, error)
	GetByCode(code string) (*entity.SupplyItem, error)
	// GetForUpdate obtiene el mantimento bloqueando su fila; solo tiene
	// sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.SupplyItem, error)
	List() ([]*entity.SupplyItem, error)
	UpdateStock(id string, stock decimal.Decimal) error
	UpdatePhotoURL(id, photoURL string) error
	Delete(id string) error

	CreateMovement(movement *entity.SupplyMovement) error
	ListMovements(supplyID string) ([]entity.SupplyMovement, error)
	ListAllMovements() ([]entity.SupplyMovement, error)
}
