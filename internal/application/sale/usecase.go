// Package sale implementa la venta integrada: la única operación que cruza dos
// libros. La salida de stock del producto y el débito al comprador se aplican
// dentro de UNA transacción, así nunca puede persistir una venta a medias
// (stock descontado sin débito, o al revés).
package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
	"github.com/passoapasso/cantina-api/internal/domain"
	"github.com/passoapasso/cantina-api/internal/domain/entity"
	domledger "github.com/passoapasso/cantina-api/internal/domain/ledger"
)

// SaleUseCase coordina la venta para cliente o colaborador.
type SaleUseCase struct {
	txRunner appledger.TxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner appledger.TxRunner) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner}
}

// SellToCustomer vende quantity unidades de un producto a un cliente:
// salida de stock (contraparte: cliente) + débito al saldo (contraparte:
// producto), total = precio × cantidad. Ambos libros se recalculan plegando
// su historial completo dentro de la misma transacción.
func (uc *SaleUseCase) SellToCustomer(ctx context.Context, in dto.CustomerSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerID == "" || in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var result *dto.SaleResponse
	err := uc.txRunner.Run(ctx, func(r appledger.TxRepos) error {
		product, err := r.Products.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		customer, err := r.Customers.GetForUpdate(in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if product.StockOnHand.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		total := product.Price.Mul(in.Quantity)
		now := time.Now()

		stockAfter, err := applyStockOut(r, product, in.Quantity, in.CustomerID,
			fmt.Sprintf("Venda para %s", customer.Name), now)
		if err != nil {
			return err
		}

		// Si el débito falla, la tx revierte también la salida de stock;
		// el error distingue la venta parcial para el operador.
		debit := &entity.CustomerMovement{
			ID:          uuid.New().String(),
			CustomerID:  in.CustomerID,
			Type:        entity.CustomerMovementDebit,
			Amount:      total,
			Description: fmt.Sprintf("Compra: %sx %s", in.Quantity.String(), product.Name),
			Date:        now,
			ProductID:   in.ProductID,
		}
		if err := r.Customers.CreateMovement(debit); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSalePartiallyApplied, err)
		}
		history, err := r.Customers.ListMovements(in.CustomerID)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSalePartiallyApplied, err)
		}
		balance := domledger.FoldCustomerBalance(history)
		if err := r.Customers.UpdateBalance(in.CustomerID, balance); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSalePartiallyApplied, err)
		}

		result = &dto.SaleResponse{
			ProductID:    in.ProductID,
			BuyerID:      in.CustomerID,
			Quantity:     in.Quantity,
			Total:        total,
			StockAfter:   stockAfter,
			BalanceAfter: balance,
			Date:         now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SellToStaff variante con colaborador como comprador: la misma salida de
// stock, pero el débito aumenta la deuda del colaborador (con piso en cero
// tras el pliegue, como cualquier movimiento de ese libro).
func (uc *SaleUseCase) SellToStaff(ctx context.Context, in dto.StaffSaleRequest) (*dto.SaleResponse, error) {
	if in.StaffID == "" || in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var result *dto.SaleResponse
	err := uc.txRunner.Run(ctx, func(r appledger.TxRepos) error {
		product, err := r.Products.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		staff, err := r.Staff.GetForUpdate(in.StaffID)
		if err != nil {
			return err
		}
		if staff == nil {
			return domain.ErrNotFound
		}
		if product.StockOnHand.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		total := product.Price.Mul(in.Quantity)
		now := time.Now()

		stockAfter, err := applyStockOut(r, product, in.Quantity, "",
			fmt.Sprintf("Venda para %s", staff.Name), now)
		if err != nil {
			return err
		}

		debit := &entity.StaffMovement{
			ID:          uuid.New().String(),
			StaffID:     in.StaffID,
			Type:        entity.StaffMovementDebit,
			Amount:      total,
			Description: fmt.Sprintf("Compra: %sx %s", in.Quantity.String(), product.Name),
			Date:        now,
			ProductID:   in.ProductID,
		}
		if err := r.Staff.CreateMovement(debit); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSalePartiallyApplied, err)
		}
		history, err := r.Staff.ListMovements(in.StaffID)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSalePartiallyApplied, err)
		}
		owed := domledger.FoldStaffDebt(history)
		if err := r.Staff.UpdateOwedAmount(in.StaffID, owed); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSalePartiallyApplied, err)
		}

		result = &dto.SaleResponse{
			ProductID:    in.ProductID,
			BuyerID:      in.StaffID,
			Quantity:     in.Quantity,
			Total:        total,
			StockAfter:   stockAfter,
			BalanceAfter: owed,
			Date:         now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyStockOut registra la salida de stock y recalcula el agregado del
// producto plegando el historial completo.
func applyStockOut(r appledger.TxRepos, product *entity.Product, quantity decimal.Decimal, customerID, description string, now time.Time) (decimal.Decimal, error) {
	mov := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Type:        entity.StockMovementOut,
		Quantity:    quantity,
		Description: description,
		Date:        now,
		CustomerID:  customerID,
	}
	if err := r.Products.CreateMovement(mov); err != nil {
		return decimal.Zero, err
	}
	history, err := r.Products.ListMovements(product.ID)
	if err != nil {
		return decimal.Zero, err
	}
	stock := domledger.FoldStock(history)
	if stock.IsNegative() {
		return decimal.Zero, domain.ErrInsufficientStock
	}
	if err := r.Products.UpdateStock(product.ID, stock); err != nil {
		return decimal.Zero, err
	}
	return stock, nil
}
