// Package ledger contiene los casos de uso de los cuatro libros de la cantina
// (clientes, productos, colaboradores y mantimentos). Toda mutación sigue el
// mismo protocolo: dentro de una transacción se bloquea la fila de la entidad,
// se agrega el movimiento y se recalcula el agregado plegando el historial
// completo antes de persistirlo.
package ledger

import (
	"context"
	"io"

	"github.com/passoapasso/cantina-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción. Cada caso de
// uso toca solo su libro; la venta integrada cruza dos.
type TxRepos struct {
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
	Staff     repository.StaffRepository
	Supplies  repository.SupplyRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el chequeo de no-negatividad, el
// alta del movimiento y el recálculo del agregado sean una unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// PhotoStorage puerto de almacenamiento de objetos para fotos de productos y
// mantimentos. El dominio solo guarda la URL devuelta.
type PhotoStorage interface {
	Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}
