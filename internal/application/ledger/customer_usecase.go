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

// CustomerUseCase libro de clientes: alta, créditos, débitos, baja y listado.
type CustomerUseCase struct {
	txRunner TxRunner
	repo     repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(txRunner TxRunner, repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{txRunner: txRunner, repo: repo}
}

// Register crea un cliente con saldo cero.
func (uc *CustomerUseCase) Register(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Balance:      decimal.Zero,
		RegisteredAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// AddCredit registra una recarga de saldo.
func (uc *CustomerUseCase) AddCredit(ctx context.Context, customerID string, in dto.CustomerMovementRequest) (*dto.CustomerResponse, error) {
	return uc.applyMovement(ctx, customerID, entity.CustomerMovementCredit, in)
}

// AddDebit registra un consumo. ProductID referencia el producto vendido
// cuando el débito viene de una venta. El saldo puede quedar negativo.
func (uc *CustomerUseCase) AddDebit(ctx context.Context, customerID string, in dto.CustomerMovementRequest) (*dto.CustomerResponse, error) {
	return uc.applyMovement(ctx, customerID, entity.CustomerMovementDebit, in)
}

// applyMovement agrega el movimiento y recalcula el saldo plegando el
// historial completo, todo dentro de una transacción con la fila bloqueada.
func (uc *CustomerUseCase) applyMovement(ctx context.Context, customerID, movType string, in dto.CustomerMovementRequest) (*dto.CustomerResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.Customer
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		customer, err := r.Customers.GetForUpdate(customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		mov := &entity.CustomerMovement{
			ID:          uuid.New().String(),
			CustomerID:  customerID,
			Type:        movType,
			Amount:      in.Amount,
			Description: in.Description,
			Date:        time.Now(),
			ProductID:   in.ProductID,
		}
		if err := r.Customers.CreateMovement(mov); err != nil {
			return err
		}
		history, err := r.Customers.ListMovements(customerID)
		if err != nil {
			return err
		}
		balance := domledger.FoldCustomerBalance(history)
		if err := r.Customers.UpdateBalance(customerID, balance); err != nil {
			return err
		}
		customer.Balance = balance
		customer.History = history
		result = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(result), nil
}

// Remove elimina el cliente y todo su historial (cascade en la BD).
func (uc *CustomerUseCase) Remove(customerID string) error {
	return uc.repo.Delete(customerID)
}

// List devuelve los clientes ordenados por nombre, cada uno con su historial
// completo en orden cronológico.
func (uc *CustomerUseCase) List() (*dto.CustomerListResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.repo.ListAllMovements()
	if err != nil {
		return nil, err
	}
	byCustomer := make(map[string][]entity.CustomerMovement)
	for _, m := range movements {
		byCustomer[m.CustomerID] = append(byCustomer[m.CustomerID], m)
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		c.History = byCustomer[c.ID]
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	history := make([]dto.CustomerMovementResponse, 0, len(c.History))
	for _, m := range c.History {
		history = append(history, dto.CustomerMovementResponse{
			ID:          m.ID,
			Type:        m.Type,
			Amount:      m.Amount,
			Description: m.Description,
			Date:        m.Date,
			ProductID:   m.ProductID,
		})
	}
	return &dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Balance:      c.Balance,
		RegisteredAt: c.RegisteredAt,
		History:      history,
	}
}
