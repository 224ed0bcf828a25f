package entity

import "time"

// Supplier representa un proveedor. TaxID (RIF) es único entre proveedores.
type Supplier struct {
	ID           int
	Name         string
	TaxID        string // RIF o identificación fiscal, único
	Phone        string
	Email        string
	Address      string
	RegisteredAt time.Time
}
