package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada ya parseada para registrar un producto.
type CreateProductRequest struct {
	Code        string
	Name        string
	Description string
	SupplierID  int
	UnitPrice   decimal.Decimal
	Stock       int
}

// UpdateProductRequest borrador de edición de un producto: solo los campos
// no nil se aplican a la copia de trabajo. Mientras el borrador no se
// confirme, el registro vivo no cambia; descartar el borrador descarta
// todos los cambios pendientes.
type UpdateProductRequest struct {
	Code        *string
	Name        *string
	Description *string
	SupplierID  *int
	UnitPrice   *decimal.Decimal
	Stock       *int
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int
	Code         string
	Name         string
	Description  string
	SupplierID   int
	UnitPrice    decimal.Decimal
	Stock        int
	RegisteredAt time.Time
}
