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

// StaffUseCase libro de colaboradores: alta, débitos, pagos, baja y listado.
// La deuda nunca queda negativa: el pliegue la recorta en cero.
type StaffUseCase struct {
	txRunner TxRunner
	repo     repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(txRunner TxRunner, repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{txRunner: txRunner, repo: repo}
}

// Register crea un colaborador con deuda cero.
func (uc *StaffUseCase) Register(in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Role) == "" {
		return nil, domain.ErrInvalidInput
	}
	staff := &entity.StaffMember{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Role:         strings.TrimSpace(in.Role),
		OwedAmount:   decimal.Zero,
		RegisteredAt: time.Now(),
	}
	if err := uc.repo.Create(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// AddDebit registra un consumo fiado que aumenta la deuda.
func (uc *StaffUseCase) AddDebit(ctx context.Context, staffID string, in dto.StaffMovementRequest) (*dto.StaffResponse, error) {
	return uc.applyMovement(ctx, staffID, entity.StaffMovementDebit, in, "")
}

// RegisterPayment registra un pago. Un pago mayor que la deuda la deja en
// cero, nunca en negativo.
func (uc *StaffUseCase) RegisterPayment(ctx context.Context, staffID string, in dto.StaffMovementRequest) (*dto.StaffResponse, error) {
	return uc.applyMovement(ctx, staffID, entity.StaffMovementPayment, in, "")
}

func (uc *StaffUseCase) applyMovement(ctx context.Context, staffID, movType string, in dto.StaffMovementRequest, productID string) (*dto.StaffResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.StaffMember
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		staff, err := r.Staff.GetForUpdate(staffID)
		if err != nil {
			return err
		}
		if staff == nil {
			return domain.ErrNotFound
		}
		mov := &entity.StaffMovement{
			ID:          uuid.New().String(),
			StaffID:     staffID,
			Type:        movType,
			Amount:      in.Amount,
			Description: in.Description,
			Date:        time.Now(),
			ProductID:   productID,
		}
		if err := r.Staff.CreateMovement(mov); err != nil {
			return err
		}
		history, err := r.Staff.ListMovements(staffID)
		if err != nil {
			return err
		}
		owed := domledger.FoldStaffDebt(history)
		if err := r.Staff.UpdateOwedAmount(staffID, owed); err != nil {
			return err
		}
		staff.OwedAmount = owed
		staff.History = history
		result = staff
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStaffResponse(result), nil
}

// Remove elimina el colaborador y todo su historial (cascade en la BD).
func (uc *StaffUseCase) Remove(staffID string) error {
	return uc.repo.Delete(staffID)
}

// List devuelve los colaboradores ordenados por nombre con historial completo.
func (uc *StaffUseCase) List() (*dto.StaffListResponse, error) {
	members, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.repo.ListAllMovements()
	if err != nil {
		return nil, err
	}
	byStaff := make(map[string][]entity.StaffMovement)
	for _, m := range movements {
		byStaff[m.StaffID] = append(byStaff[m.StaffID], m)
	}
	items := make([]dto.StaffResponse, 0, len(members))
	for _, s := range members {
		s.History = byStaff[s.ID]
		items = append(items, *toStaffResponse(s))
	}
	return &dto.StaffListResponse{Items: items, Total: len(items)}, nil
}

func toStaffResponse(s *entity.StaffMember) *dto.StaffResponse {
	history := make([]dto.StaffMovementResponse, 0, len(s.History))
	for _, m := range s.History {
		history = append(history, dto.StaffMovementResponse{
			ID:          m.ID,
			Type:        m.Type,
			Amount:      m.Amount,
			Description: m.Description,
			Date:        m.Date,
			ProductID:   m.ProductID,
		})
	}
	return &dto.StaffResponse{
		ID:           s.ID,
		Name:         s.Name,
		Role:         s.Role,
		OwedAmount:   s.OwedAmount,
		RegisteredAt: s.RegisteredAt,
		History:      history,
	}
}
