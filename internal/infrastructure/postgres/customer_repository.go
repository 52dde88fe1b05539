package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/domain"
	"github.com/passoapasso/cantina-api/internal/domain/entity"
	"github.com/passoapasso/cantina-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL
// (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
// Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente con saldo cero.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, balance, registered_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Balance, customer.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID (sin historial).
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el cliente bloqueando su fila (SELECT FOR UPDATE).
func (r *CustomerRepo) GetForUpdate(id string) (*entity.Customer, error) {
	return r.get(id, true)
}

func (r *CustomerRepo) get(id string, forUpdate bool) (*entity.Customer, error) {
	query := `
		SELECT id, name, balance, registered_at
		FROM customers WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Balance, &c.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista los clientes ordenados por nombre (sin historial).
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `
		SELECT id, name, balance, registered_at
		FROM customers ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Balance, &c.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateBalance fija el saldo recalculado (proyección del historial).
func (r *CustomerRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET balance = $2 WHERE id = $1`,
		id, balance,
	)
	if err != nil {
		return fmt.Errorf("update customer balance: %w", err)
	}
	return nil
}

// Delete elimina el cliente; la FK ON DELETE CASCADE arrastra sus movimientos.
func (r *CustomerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateMovement agrega un movimiento al historial (append-only).
func (r *CustomerRepo) CreateMovement(m *entity.CustomerMovement) error {
	query := `
		INSERT INTO customer_movements (id, customer_id, type, amount, description, date, product_id)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CustomerID, m.Type, m.Amount, m.Description, m.Date, m.ProductID,
	)
	if err != nil {
		return fmt.Errorf("insert customer movement: %w", err)
	}
	return nil
}

// ListMovements historial de un cliente, fecha ascendente.
func (r *CustomerRepo) ListMovements(customerID string) ([]entity.CustomerMovement, error) {
	query := `
		SELECT id, customer_id, type, amount, description, date, COALESCE(product_id, '')
		FROM customer_movements WHERE customer_id = $1 ORDER BY date, id`
	return r.queryMovements(query, customerID)
}

// ListAllMovements historial de todos los clientes, fecha ascendente.
func (r *CustomerRepo) ListAllMovements() ([]entity.CustomerMovement, error) {
	query := `
		SELECT id, customer_id, type, amount, description, date, COALESCE(product_id, '')
		FROM customer_movements ORDER BY date, id`
	return r.queryMovements(query)
}

func (r *CustomerRepo) queryMovements(query string, args ...any) ([]entity.CustomerMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customer movements: %w", err)
	}
	defer rows.Close()
	var list []entity.CustomerMovement
	for rows.Next() {
		var m entity.CustomerMovement
		if err := rows.Scan(&m.ID, &m.CustomerID, &m.Type, &m.Amount, &m.Description, &m.Date, &m.ProductID); err != nil {
			return nil, fmt.Errorf("scan customer movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
