// Package ledgertest provee repositorios en memoria y un TxRunner con
// rollback por snapshot para los tests de los casos de uso. Las
// implementaciones respetan el contrato de los puertos: listados por nombre,
// historiales en orden de inserción y cascade al eliminar la entidad.
package ledgertest

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
	"github.com/passoapasso/cantina-api/internal/domain"
	"github.com/passoapasso/cantina-api/internal/domain/entity"
	"github.com/passoapasso/cantina-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*FakeCustomerRepo)(nil)
	_ repository.ProductRepository  = (*FakeProductRepo)(nil)
	_ repository.StaffRepository    = (*FakeStaffRepo)(nil)
	_ repository.SupplyRepository   = (*FakeSupplyRepo)(nil)
	_ appledger.TxRunner            = (*TxRunner)(nil)
)

// World agrupa los cuatro libros en memoria.
type World struct {
	Customers *FakeCustomerRepo
	Products  *FakeProductRepo
	Staff     *FakeStaffRepo
	Supplies  *FakeSupplyRepo
}

// NewWorld construye los repositorios vacíos.
func NewWorld() *World {
	return &World{
		Customers: &FakeCustomerRepo{},
		Products:  &FakeProductRepo{},
		Staff:     &FakeStaffRepo{},
		Supplies:  &FakeSupplyRepo{},
	}
}

// Repos devuelve los repositorios como TxRepos.
func (w *World) Repos() appledger.TxRepos {
	return appledger.TxRepos{
		Customers: w.Customers,
		Products:  w.Products,
		Staff:     w.Staff,
		Supplies:  w.Supplies,
	}
}

// TxRunner ejecuta fn sobre los mismos repositorios; si fn devuelve error,
// restaura el snapshot previo (simula el rollback de la transacción).
type TxRunner struct {
	World *World
}

// NewTxRunner construye el runner sobre el mundo dado.
func NewTxRunner(w *World) *TxRunner {
	return &TxRunner{World: w}
}

// Run implementa appledger.TxRunner.
func (t *TxRunner) Run(_ context.Context, fn func(r appledger.TxRepos) error) error {
	snapshot := t.World.snapshot()
	if err := fn(t.World.Repos()); err != nil {
		t.World.restore(snapshot)
		return err
	}
	return nil
}

type worldSnapshot struct {
	customers    []entity.Customer
	customerMovs []entity.CustomerMovement
	products     []entity.Product
	stockMovs    []entity.StockMovement
	staff        []entity.StaffMember
	staffMovs    []entity.StaffMovement
	supplies     []entity.SupplyItem
	supplyMovs   []entity.SupplyMovement
}

func (w *World) snapshot() worldSnapshot {
	return worldSnapshot{
		customers:    append([]entity.Customer(nil), w.Customers.items...),
		customerMovs: append([]entity.CustomerMovement(nil), w.Customers.movements...),
		products:     append([]entity.Product(nil), w.Products.items...),
		stockMovs:    append([]entity.StockMovement(nil), w.Products.movements...),
		staff:        append([]entity.StaffMember(nil), w.Staff.items...),
		staffMovs:    append([]entity.StaffMovement(nil), w.Staff.movements...),
		supplies:     append([]entity.SupplyItem(nil), w.Supplies.items...),
		supplyMovs:   append([]entity.SupplyMovement(nil), w.Supplies.movements...),
	}
}

func (w *World) restore(s worldSnapshot) {
	w.Customers.items = s.customers
	w.Customers.movements = s.customerMovs
	w.Products.items = s.products
	w.Products.movements = s.stockMovs
	w.Staff.items = s.staff
	w.Staff.movements = s.staffMovs
	w.Supplies.items = s.supplies
	w.Supplies.movements = s.supplyMovs
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// FakeCustomerRepo implementación en memoria de repository.CustomerRepository.
// FailCreateMovement fuerza el error en el próximo CreateMovement (para
// simular el fallo del paso de débito de la venta).
type FakeCustomerRepo struct {
	items              []entity.Customer
	movements          []entity.CustomerMovement
	FailCreateMovement error
}

func (r *FakeCustomerRepo) Create(c *entity.Customer) error {
	r.items = append(r.items, *c)
	return nil
}

func (r *FakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *FakeCustomerRepo) GetForUpdate(id string) (*entity.Customer, error) {
	return r.GetByID(id)
}

func (r *FakeCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.items))
	for i := range r.items {
		c := r.items[i]
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *FakeCustomerRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Balance = balance
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeCustomerRepo) Delete(id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			kept := r.movements[:0]
			for _, m := range r.movements {
				if m.CustomerID != id {
					kept = append(kept, m)
				}
			}
			r.movements = kept
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeCustomerRepo) CreateMovement(m *entity.CustomerMovement) error {
	if r.FailCreateMovement != nil {
		return r.FailCreateMovement
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *FakeCustomerRepo) ListMovements(customerID string) ([]entity.CustomerMovement, error) {
	var out []entity.CustomerMovement
	for _, m := range r.movements {
		if m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *FakeCustomerRepo) ListAllMovements() ([]entity.CustomerMovement, error) {
	return append([]entity.CustomerMovement(nil), r.movements...), nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// FakeProductRepo implementación en memoria de repository.ProductRepository.
type FakeProductRepo struct {
	items     []entity.Product
	movements []entity.StockMovement
}

func (r *FakeProductRepo) Create(p *entity.Product) error {
	for i := range r.items {
		if r.items[i].Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	r.items = append(r.items, *p)
	return nil
}

func (r *FakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *FakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for i := range r.items {
		if r.items[i].Code == code {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *FakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *FakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for i := range r.items {
		p := r.items[i]
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *FakeProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].StockOnHand = stock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeProductRepo) UpdatePhotoURL(id, photoURL string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].PhotoURL = photoURL
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeProductRepo) Delete(id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			kept := r.movements[:0]
			for _, m := range r.movements {
				if m.ProductID != id {
					kept = append(kept, m)
				}
			}
			r.movements = kept
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeProductRepo) CreateMovement(m *entity.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *FakeProductRepo) ListMovements(productID string) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *FakeProductRepo) ListAllMovements() ([]entity.StockMovement, error) {
	return append([]entity.StockMovement(nil), r.movements...), nil
}

// ── Colaboradores ─────────────────────────────────────────────────────────────

// FakeStaffRepo implementación en memoria de repository.StaffRepository.
type FakeStaffRepo struct {
	items     []entity.StaffMember
	movements []entity.StaffMovement
}

func (r *FakeStaffRepo) Create(s *entity.StaffMember) error {
	r.items = append(r.items, *s)
	return nil
}

func (r *FakeStaffRepo) GetByID(id string) (*entity.StaffMember, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *FakeStaffRepo) GetForUpdate(id string) (*entity.StaffMember, error) {
	return r.GetByID(id)
}

func (r *FakeStaffRepo) List() ([]*entity.StaffMember, error) {
	out := make([]*entity.StaffMember, 0, len(r.items))
	for i := range r.items {
		s := r.items[i]
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *FakeStaffRepo) UpdateOwedAmount(id string, owed decimal.Decimal) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].OwedAmount = owed
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeStaffRepo) Delete(id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			kept := r.movements[:0]
			for _, m := range r.movements {
				if m.StaffID != id {
					kept = append(kept, m)
				}
			}
			r.movements = kept
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeStaffRepo) CreateMovement(m *entity.StaffMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *FakeStaffRepo) ListMovements(staffID string) ([]entity.StaffMovement, error) {
	var out []entity.StaffMovement
	for _, m := range r.movements {
		if m.StaffID == staffID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *FakeStaffRepo) ListAllMovements() ([]entity.StaffMovement, error) {
	return append([]entity.StaffMovement(nil), r.movements...), nil
}

// ── Mantimentos ───────────────────────────────────────────────────────────────

// FakeSupplyRepo implementación en memoria de repository.SupplyRepository.
type FakeSupplyRepo struct {
	items     []entity.SupplyItem
	movements []entity.SupplyMovement
}

func (r *FakeSupplyRepo) Create(s *entity.SupplyItem) error {
	for i := range r.items {
		if r.items[i].Code == s.Code {
			return domain.ErrDuplicate
		}
	}
	r.items = append(r.items, *s)
	return nil
}

func (r *FakeSupplyRepo) GetByID(id string) (*entity.SupplyItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *FakeSupplyRepo) GetByCode(code string) (*entity.SupplyItem, error) {
	for i := range r.items {
		if r.items[i].Code == code {
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *FakeSupplyRepo) GetForUpdate(id string) (*entity.SupplyItem, error) {
	return r.GetByID(id)
}

func (r *FakeSupplyRepo) List() ([]*entity.SupplyItem, error) {
	out := make([]*entity.SupplyItem, 0, len(r.items))
	for i := range r.items {
		s := r.items[i]
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *FakeSupplyRepo) UpdateStock(id string, stock decimal.Decimal) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].StockOnHand = stock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeSupplyRepo) UpdatePhotoURL(id, photoURL string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].PhotoURL = photoURL
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeSupplyRepo) Delete(id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			kept := r.movements[:0]
			for _, m := range r.movements {
				if m.SupplyID != id {
					kept = append(kept, m)
				}
			}
			r.movements = kept
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeSupplyRepo) CreateMovement(m *entity.SupplyMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *FakeSupplyRepo) ListMovements(supplyID string) ([]entity.SupplyMovement, error) {
	var out []entity.SupplyMovement
	for _, m := range r.movements {
		if m.SupplyID == supplyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *FakeSupplyRepo) ListAllMovements() ([]entity.SupplyMovement, error) {
	return append([]entity.SupplyMovement(nil), r.movements...), nil
}
