package repository

import (
	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product y su
// historial de stock (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	UpdateStock(id string, stock decimal.Decimal) error
	UpdatePhotoURL(id, photoURL string) error
	Delete(id string) error

	CreateMovement(movement *entity.StockMovement) error
	ListMovements(productID string) ([]entity.StockMovement, error)
	ListAllMovements() ([]entity.StockMovement, error)
}
