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

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	q Querier
}

func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

func (r *StaffRepo) Create(staff *entity.StaffMember) error {
	query := `
		INSERT INTO staff_members (id, name, role, owed_amount, registered_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		staff.ID, staff.Name, staff.Role, staff.OwedAmount, staff.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("insert staff member: %w", err)
	}
	return nil
}

func (r *StaffRepo) GetByID(id string) (*entity.StaffMember, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el colaborador bloqueando su fila (SELECT FOR UPDATE).
func (r *StaffRepo) GetForUpdate(id string) (*entity.StaffMember, error) {
	return r.get(id, true)
}

func (r *StaffRepo) get(id string, forUpdate bool) (*entity.StaffMember, error) {
	query := `
		SELECT id, name, role, owed_amount, registered_at
		FROM staff_members WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var s entity.StaffMember
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Role, &s.OwedAmount, &s.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff member: %w", err)
	}
	return &s, nil
}

func (r *StaffRepo) List() ([]*entity.StaffMember, error) {
	query := `
		SELECT id, name, role, owed_amount, registered_at
		FROM staff_members ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list staff members: %w", err)
	}
	defer rows.Close()
	var list []*entity.StaffMember
	for rows.Next() {
		var s entity.StaffMember
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.OwedAmount, &s.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan staff member: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateOwedAmount fija la deuda recalculada (proyección del historial).
func (r *StaffRepo) UpdateOwedAmount(id string, owed decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE staff_members SET owed_amount = $2 WHERE id = $1`,
		id, owed,
	)
	if err != nil {
		return fmt.Errorf("update staff owed amount: %w", err)
	}
	return nil
}

// Delete elimina el colaborador; la FK ON DELETE CASCADE arrastra su historial.
func (r *StaffRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM staff_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff member: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StaffRepo) CreateMovement(m *entity.StaffMovement) error {
	query := `
		INSERT INTO staff_movements (id, staff_id, type, amount, description, date, product_id)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.StaffID, m.Type, m.Amount, m.Description, m.Date, m.ProductID,
	)
	if err != nil {
		return fmt.Errorf("insert staff movement: %w", err)
	}
	return nil
}

func (r *StaffRepo) ListMovements(staffID string) ([]entity.StaffMovement, error) {
	query := `
		SELECT id, staff_id, type, amount, description, date, COALESCE(product_id, '')
		FROM staff_movements WHERE staff_id = $1 ORDER BY date, id`
	return r.queryMovements(query, staffID)
}

func (r *StaffRepo) ListAllMovements() ([]entity.StaffMovement, error) {
	query := `
		SELECT id, staff_id, type, amount, description, date, COALESCE(product_id, '')
		FROM staff_movements ORDER BY date, id`
	return r.queryMovements(query)
}

func (r *StaffRepo) queryMovements(query string, args ...any) ([]entity.StaffMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list staff movements: %w", err)
	}
	defer rows.Close()
	var list []entity.StaffMovement
	for rows.Next() {
		var m entity.StaffMovement
		if err := rows.Scan(&m.ID, &m.StaffID, &m.Type, &m.Amount, &m.Description, &m.Date, &m.ProductID); err != nil {
			return nil, fmt.Errorf("scan staff movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
