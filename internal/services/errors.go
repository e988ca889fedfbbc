// internal/services/errors.go
package services

import "fmt"

// ValidationError covers malformed or missing request input. The HTTP
// boundary maps it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError covers references to records that do not exist. The
// HTTP boundary maps it to 404, except inside sale registration where
// it folds into a 400 validation-style message.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s no encontrado", e.Resource)
	}
	return fmt.Sprintf("%s con ID %s no existe.", e.Resource, e.ID)
}

// InsufficientStockError identifies the offending product by name, as
// shown to the operator.
type InsufficientStockError struct {
	Producto string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente para el producto %s.", e.Producto)
}
