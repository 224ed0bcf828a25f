package dto

import "time"

// CreateSupplierRequest entrada ya parseada para registrar un proveedor.
type CreateSupplierRequest struct {
	Name    string
	TaxID   string
	Phone   string
	Email   string
	Address string
}

// UpdateSupplierRequest borrador de edición de un proveedor.
type UpdateSupplierRequest struct {
	Name    *string
	TaxID   *string
	Phone   *string
	Email   *string
	Address *string
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           int
	Name         string
	TaxID        string
	Phone        string
	Email        string
	Address      string
	RegisteredAt time.Time
}
