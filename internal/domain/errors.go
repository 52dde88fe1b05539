package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrSalePartiallyApplied: la salida de stock se registró pero el débito al
	// comprador falló. La transacción revierte ambos pasos; el error distingue
	// el caso para que el operador sepa en qué paso se rechazó la venta.
	ErrSalePartiallyApplied = errors.New("venta aplicada parcialmente: salida de stock sin débito")
)
