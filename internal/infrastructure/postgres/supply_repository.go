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

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación del puerto SupplyRepository sobre PostgreSQL.
type SupplyRepo struct {
	q Querier
}

func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

func (r *SupplyRepo) Create(item *entity.SupplyItem) error {
	query := `
		INSERT INTO supply_items (id, code, name, unit, stock_on_hand, min_stock, max_stock, photo_url, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Unit,
		item.StockOnHand, item.MinStock, item.MaxStock, item.PhotoURL, item.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supply item: %w", err)
	}
	return nil
}

func (r *SupplyRepo) GetByID(id string) (*entity.SupplyItem, error) {
	return r.get(`WHERE id = $1`, id)
}

func (r *SupplyRepo) GetByCode(code string) (*entity.SupplyItem, error) {
	return r.get(`WHERE code = $1`, code)
}

// GetForUpdate obtiene el mantimento bloqueando su fila (SELECT FOR UPDATE).
func (r *SupplyRepo) GetForUpdate(id string) (*entity.SupplyItem, error) {
	return r.get(`WHERE id = $1 FOR UPDATE`, id)
}

func (r *SupplyRepo) get(clause, arg string) (*entity.SupplyItem, error) {
	query := `
		SELECT id, code, name, unit, stock_on_hand, min_stock, max_stock, photo_url, registered_at
		FROM supply_items ` + clause
	var s entity.SupplyItem
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Code, &s.Name, &s.Unit, &s.StockOnHand, &s.MinStock, &s.MaxStock, &s.PhotoURL, &s.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply item: %w", err)
	}
	return &s, nil
}

func (r *SupplyRepo) List() ([]*entity.SupplyItem, error) {
	query := `
		SELECT id, code, name, unit, stock_on_hand, min_stock, max_stock, photo_url, registered_at
		FROM supply_items ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list supply items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplyItem
	for rows.Next() {
		var s entity.SupplyItem
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Unit, &s.StockOnHand, &s.MinStock, &s.MaxStock, &s.PhotoURL, &s.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan supply item: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateStock fija el stock recalculado (proyección del historial).
func (r *SupplyRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE supply_items SET stock_on_hand = $2 WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update supply stock: %w", err)
	}
	return nil
}

func (r *SupplyRepo) UpdatePhotoURL(id, photoURL string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE supply_items SET photo_url = $2 WHERE id = $1`,
		id, photoURL,
	)
	if err != nil {
		return fmt.Errorf("update supply photo: %w", err)
	}
	return nil
}

// Delete elimina el mantimento; la FK ON DELETE CASCADE arrastra su historial.
func (r *SupplyRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM supply_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supply item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplyRepo) CreateMovement(m *entity.SupplyMovement) error {
	query := `
		INSERT INTO supply_movements (id, supply_id, type, quantity, description, date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.SupplyID, m.Type, m.Quantity, m.Description, m.Date,
	)
	if err != nil {
		return fmt.Errorf("insert supply movement: %w", err)
	}
	return nil
}

func (r *SupplyRepo) ListMovements(supplyID string) ([]entity.SupplyMovement, error) {
	query := `
		SELECT id, supply_id, type, quantity, description, date
		FROM supply_movements WHERE supply_id = $1 ORDER BY date, id`
	return r.queryMovements(query, supplyID)
}

func (r *SupplyRepo) ListAllMovements() ([]entity.SupplyMovement, error) {
	query := `
		SELECT id, supply_id, type, quantity, description, date
		FROM supply_movements ORDER BY date, id`
	return r.queryMovements(query)
}

func (r *SupplyRepo) queryMovements(query string, args ...any) ([]entity.SupplyMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supply movements: %w", err)
	}
	defer rows.Close()
	var list []entity.SupplyMovement
	for rows.Next() {
		var m entity.SupplyMovement
		if err := rows.Scan(&m.ID, &m.SupplyID, &m.Type, &m.Quantity, &m.Description, &m.Date); err != nil {
			return nil, fmt.Errorf("scan supply movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
