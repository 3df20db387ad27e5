package models

import (
	"errors"
	"fmt"
)

// Domain errors shared by repositories, services and handlers. Handlers map
// them to HTTP status codes with errors.Is/As; anything outside this set is
// treated as an internal error.
var (
	ErrProdutoNotFound  = errors.New("produto not found")
	ErrVendedorNotFound = errors.New("vendedor not found")
	ErrPedidoNotFound   = errors.New("pedido not found")

	// ErrProdutoReferenced / ErrVendedorReferenced guard deletes of entities
	// that still have pedidos pointing at them.
	ErrProdutoReferenced  = errors.New("produto has pedidos and cannot be removed")
	ErrVendedorReferenced = errors.New("vendedor has pedidos and cannot be removed")

	// ErrEmailTaken signals a duplicate vendedor email.
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError is a client input problem detected before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InsufficientStockError reports a rejected order mutation and how many
// units were actually available at the time of the check.
type InsufficientStockError struct {
	ProdutoID  uint
	Disponivel int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para produto %d: disponível %d", e.ProdutoID, e.Disponivel)
}
