package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	"github.com/passoapasso/cantina-api/internal/domain"
	"github.com/passoapasso/cantina-api/internal/domain/entity"
	domledger "github.com/passoapasso/cantina-api/internal/domain/ledger"
	"github.com/passoapasso/cantina-api/internal/domain/repository"
)

// Descripción generada por el ajuste de stock de producto (el original lo
// expresa como entrada/salida del |delta|, no con un tipo propio).
const productAdjustDescription = "Ajuste manual de estoque"

// ProductUseCase libro de productos vendibles: alta, entradas, salidas,
// ajuste, foto, baja y listado.
type ProductUseCase struct {
	txRunner TxRunner
	repo     repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo}
}

// Register crea un producto. Un stock inicial > 0 se representa como un
// movimiento sintético "Estoque inicial" para que el pliegue del historial
// reproduzca el agregado desde el primer día.
func (uc *ProductUseCase) Register(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.InitialStock.IsNegative() || in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Code:         strings.TrimSpace(in.Code),
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price,
		StockOnHand:  in.InitialStock,
		MinStock:     in.MinStock,
		PhotoURL:     in.PhotoURL,
		RegisteredAt: now,
	}
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.Products.Create(product); err != nil {
			return err
		}
		if in.InitialStock.GreaterThan(decimal.Zero) {
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				Type:        entity.StockMovementIn,
				Quantity:    in.InitialStock,
				Description: entity.InitialStockDescription,
				Date:        now,
			}
			if err := r.Products.CreateMovement(mov); err != nil {
				return err
			}
			product.History = []entity.StockMovement{*mov}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// StockIn registra una entrada de stock.
func (uc *ProductUseCase) StockIn(ctx context.Context, productID string, in dto.StockMovementRequest) (*dto.ProductResponse, error) {
	return uc.applyMovement(ctx, productID, entity.StockMovementIn, in)
}

// StockOut registra una salida de stock. Rechaza con ErrInsufficientStock la
// salida que dejaría el stock negativo; el chequeo ocurre con la fila
// bloqueada, así dos salidas concurrentes no pueden sobregirar.
func (uc *ProductUseCase) StockOut(ctx context.Context, productID string, in dto.StockMovementRequest) (*dto.ProductResponse, error) {
	return uc.applyMovement(ctx, productID, entity.StockMovementOut, in)
}

func (uc *ProductUseCase) applyMovement(ctx context.Context, productID, movType string, in dto.StockMovementRequest) (*dto.ProductResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.Product
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		product, err := r.Products.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   productID,
			Type:        movType,
			Quantity:    in.Quantity,
			Description: in.Description,
			Date:        time.Now(),
			CustomerID:  in.CustomerID,
		}
		if err := r.Products.CreateMovement(mov); err != nil {
			return err
		}
		history, err := r.Products.ListMovements(productID)
		if err != nil {
			return err
		}
		stock := domledger.FoldStock(history)
		if stock.IsNegative() {
			// Rollback: el movimiento no queda registrado y el stock no cambia.
			return domain.ErrInsufficientStock
		}
		if err := r.Products.UpdateStock(productID, stock); err != nil {
			return err
		}
		product.StockOnHand = stock
		product.History = history
		result = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(result), nil
}

// Adjust fija el stock en un valor absoluto. El delta contra el stock vigente
// queda registrado como entrada o salida con descripción generada; con delta
// cero no se registra nada.
func (uc *ProductUseCase) Adjust(ctx context.Context, productID string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.NewQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.Product
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		product, err := r.Products.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		history, err := r.Products.ListMovements(productID)
		if err != nil {
			return err
		}
		current := domledger.FoldStock(history)
		delta := in.NewQuantity.Sub(current)
		if !delta.IsZero() {
			movType := entity.StockMovementIn
			if delta.IsNegative() {
				movType = entity.StockMovementOut
			}
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   productID,
				Type:        movType,
				Quantity:    delta.Abs(),
				Description: productAdjustDescription,
				Date:        time.Now(),
			}
			if err := r.Products.CreateMovement(mov); err != nil {
				return err
			}
			history = append(history, *mov)
		}
		stock := domledger.FoldStock(history)
		if err := r.Products.UpdateStock(productID, stock); err != nil {
			return err
		}
		product.StockOnHand = stock
		product.History = history
		result = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(result), nil
}

// UpdatePhoto guarda la URL de la foto subida al almacenamiento de objetos.
func (uc *ProductUseCase) UpdatePhoto(productID, photoURL string) error {
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdatePhotoURL(productID, photoURL)
}

// Remove elimina el producto y todo su historial (cascade en la BD).
func (uc *ProductUseCase) Remove(productID string) error {
	return uc.repo.Delete(productID)
}

// List devuelve los productos ordenados por nombre con historial completo.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.repo.ListAllMovements()
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string][]entity.StockMovement)
	for _, m := range movements {
		byProduct[m.ProductID] = append(byProduct[m.ProductID], m)
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		p.History = byProduct[p.ID]
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	history := make([]dto.StockMovementResponse, 0, len(p.History))
	for _, m := range p.History {
		history = append(history, dto.StockMovementResponse{
			ID:          m.ID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Description: m.Description,
			Date:        m.Date,
			CustomerID:  m.CustomerID,
		})
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Price:         p.Price,
		StockOnHand:   p.StockOnHand,
		MinStock:      p.MinStock,
		BelowMinStock: p.BelowMinStock(),
		PhotoURL:      p.PhotoURL,
		RegisteredAt:  p.RegisteredAt,
		History:       history,
	}
}
