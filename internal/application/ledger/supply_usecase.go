package ledger

import (
	"context"
	"fmt"
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

// SupplyUseCase libro de mantimentos de la despensa general: alta, entradas,
// salidas, ajuste a valor absoluto, foto, baja y listado.
type SupplyUseCase struct {
	txRunner TxRunner
	repo     repository.SupplyRepository
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(txRunner TxRunner, repo repository.SupplyRepository) *SupplyUseCase {
	return &SupplyUseCase{txRunner: txRunner, repo: repo}
}

// Register crea un mantimento. Un stock inicial > 0 se representa como un
// movimiento sintético "Estoque inicial".
func (uc *SupplyUseCase) Register(ctx context.Context, in dto.CreateSupplyRequest) (*dto.SupplyResponse, error) {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Unit) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock.IsNegative() || in.MinStock.IsNegative() || in.MaxStock.IsNegative() {
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
	item := &entity.SupplyItem{
		ID:           uuid.New().String(),
		Code:         strings.TrimSpace(in.Code),
		Name:         strings.TrimSpace(in.Name),
		Unit:         strings.TrimSpace(in.Unit),
		StockOnHand:  in.InitialStock,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		PhotoURL:     in.PhotoURL,
		RegisteredAt: now,
	}
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.Supplies.Create(item); err != nil {
			return err
		}
		if in.InitialStock.GreaterThan(decimal.Zero) {
			mov := &entity.SupplyMovement{
				ID:          uuid.New().String(),
				SupplyID:    item.ID,
				Type:        entity.SupplyMovementIn,
				Quantity:    in.InitialStock,
				Description: entity.InitialStockDescription,
				Date:        now,
			}
			if err := r.Supplies.CreateMovement(mov); err != nil {
				return err
			}
			item.History = []entity.SupplyMovement{*mov}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSupplyResponse(item), nil
}

// StockIn registra una entrada de mantimento.
func (uc *SupplyUseCase) StockIn(ctx context.Context, supplyID string, in dto.SupplyMovementRequest) (*dto.SupplyResponse, error) {
	return uc.applyMovement(ctx, supplyID, entity.SupplyMovementIn, in)
}

// StockOut registra una salida. Rechaza con ErrInsufficientStock la salida que
// dejaría el stock negativo.
func (uc *SupplyUseCase) StockOut(ctx context.Context, supplyID string, in dto.SupplyMovementRequest) (*dto.SupplyResponse, error) {
	return uc.applyMovement(ctx, supplyID, entity.SupplyMovementOut, in)
}

func (uc *SupplyUseCase) applyMovement(ctx context.Context, supplyID, movType string, in dto.SupplyMovementRequest) (*dto.SupplyResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.SupplyItem
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		item, err := r.Supplies.GetForUpdate(supplyID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		mov := &entity.SupplyMovement{
			ID:          uuid.New().String(),
			SupplyID:    supplyID,
			Type:        movType,
			Quantity:    in.Quantity,
			Description: in.Description,
			Date:        time.Now(),
		}
		if err := r.Supplies.CreateMovement(mov); err != nil {
			return err
		}
		history, err := r.Supplies.ListMovements(supplyID)
		if err != nil {
			return err
		}
		stock := domledger.FoldSupplyStock(history)
		if stock.IsNegative() {
			return domain.ErrInsufficientStock
		}
		if err := r.Supplies.UpdateStock(supplyID, stock); err != nil {
			return err
		}
		item.StockOnHand = stock
		item.History = history
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSupplyResponse(result), nil
}

// Adjust fija el stock en un valor absoluto. El movimiento de ajuste guarda el
// delta con signo y una descripción "Ajuste manual: X → Y"; como el delta se
// calcula contra el stock vigente, el pliegue del historial sigue
// reproduciendo el valor fijado.
func (uc *SupplyUseCase) Adjust(ctx context.Context, supplyID string, in dto.AdjustStockRequest) (*dto.SupplyResponse, error) {
	if in.NewQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.SupplyItem
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		item, err := r.Supplies.GetForUpdate(supplyID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		history, err := r.Supplies.ListMovements(supplyID)
		if err != nil {
			return err
		}
		current := domledger.FoldSupplyStock(history)
		delta := in.NewQuantity.Sub(current)
		if !delta.IsZero() {
			mov := &entity.SupplyMovement{
				ID:          uuid.New().String(),
				SupplyID:    supplyID,
				Type:        entity.SupplyMovementAdjustment,
				Quantity:    delta,
				Description: fmt.Sprintf("Ajuste manual: %s → %s", current.String(), in.NewQuantity.String()),
				Date:        time.Now(),
			}
			if err := r.Supplies.CreateMovement(mov); err != nil {
				return err
			}
			history = append(history, *mov)
		}
		if err := r.Supplies.UpdateStock(supplyID, in.NewQuantity); err != nil {
			return err
		}
		item.StockOnHand = in.NewQuantity
		item.History = history
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSupplyResponse(result), nil
}

// UpdatePhoto guarda la URL de la foto subida al almacenamiento de objetos.
func (uc *SupplyUseCase) UpdatePhoto(supplyID, photoURL string) error {
	item, err := uc.repo.GetByID(supplyID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdatePhotoURL(supplyID, photoURL)
}

// Remove elimina el mantimento y todo su historial (cascade en la BD).
func (uc *SupplyUseCase) Remove(supplyID string) error {
	return uc.repo.Delete(supplyID)
}

// List devuelve los mantimentos ordenados por nombre con historial completo.
func (uc *SupplyUseCase) List() (*dto.SupplyListResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.repo.ListAllMovements()
	if err != nil {
		return nil, err
	}
	bySupply := make(map[string][]entity.SupplyMovement)
	for _, m := range movements {
		bySupply[m.SupplyID] = append(bySupply[m.SupplyID], m)
	}
	out := make([]dto.SupplyResponse, 0, len(items))
	for _, s := range items {
		s.History = bySupply[s.ID]
		out = append(out, *toSupplyResponse(s))
	}
	return &dto.SupplyListResponse{Items: out, Total: len(out)}, nil
}

func toSupplyResponse(s *entity.SupplyItem) *dto.SupplyResponse {
	history := make([]dto.SupplyMovementResponse, 0, len(s.History))
	for _, m := range s.History {
		history = append(history, dto.SupplyMovementResponse{
			ID:          m.ID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Description: m.Description,
			Date:        m.Date,
		})
	}
	return &dto.SupplyResponse{
		ID:            s.ID,
		Code:          s.Code,
		Name:          s.Name,
		Unit:          s.Unit,
		StockOnHand:   s.StockOnHand,
		MinStock:      s.MinStock,
		MaxStock:      s.MaxStock,
		BelowMinStock: s.BelowMinStock(),
		PhotoURL:      s.PhotoURL,
		RegisteredAt:  s.RegisteredAt,
		History:       history,
	}
}
