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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El stock solo cambia vía movimientos.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, code, name, price, stock_on_hand, min_stock, photo_url, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Price,
		product.StockOnHand, product.MinStock, product.PhotoURL, product.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (sin historial).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.get(`WHERE id = $1`, id)
}

// GetByCode obtiene un producto por su código legible.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	return r.get(`WHERE code = $1`, code)
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.get(`WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) get(clause, arg string) (*entity.Product, error) {
	query := `
		SELECT id, code, name, price, stock_on_hand, min_stock, photo_url, registered_at
		FROM products ` + clause
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Code, &p.Name, &p.Price, &p.StockOnHand, &p.MinStock, &p.PhotoURL, &p.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista los productos ordenados por nombre (sin historial).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, code, name, price, stock_on_hand, min_stock, photo_url, registered_at
		FROM products ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.StockOnHand, &p.MinStock, &p.PhotoURL, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateStock fija el stock recalculado (proyección del historial).
func (r *ProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_on_hand = $2 WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// UpdatePhotoURL guarda la referencia de la foto subida.
func (r *ProductRepo) UpdatePhotoURL(id, photoURL string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET photo_url = $2 WHERE id = $1`,
		id, photoURL,
	)
	if err != nil {
		return fmt.Errorf("update product photo: %w", err)
	}
	return nil
}

// Delete elimina el producto; la FK ON DELETE CASCADE arrastra sus movimientos.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateMovement agrega un movimiento al historial de stock (append-only).
func (r *ProductRepo) CreateMovement(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, description, date, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.Description, m.Date, m.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListMovements historial de stock de un producto, fecha ascendente.
func (r *ProductRepo) ListMovements(productID string) ([]entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, description, date, COALESCE(customer_id, '')
		FROM stock_movements WHERE product_id = $1 ORDER BY date, id`
	return r.queryMovements(query, productID)
}

// ListAllMovements historial de stock de todos los productos, fecha ascendente.
func (r *ProductRepo) ListAllMovements() ([]entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, description, date, COALESCE(customer_id, '')
		FROM stock_movements ORDER BY date, id`
	return r.queryMovements(query)
}

func (r *ProductRepo) queryMovements(query string, args ...any) ([]entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Description, &m.Date, &m.CustomerID); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
