package dto

import "time"

// CreateCustomerRequest entrada ya parseada para registrar un cliente.
type CreateCustomerRequest struct {
	Name       string
	IDDocument string
	Phone      string
	Email      string
	Address    string
}

// UpdateCustomerRequest borrador de edición de un cliente.
type UpdateCustomerRequest struct {
	Name       *string
	IDDocument *string
	Phone      *string
	Email      *string
	Address    *string
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID           int
	Name         string
	IDDocument   string
	Phone        string
	Email        string
	Address      string
	RegisteredAt time.Time
}
