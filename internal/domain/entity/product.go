package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. UnitPrice es siempre decimal
// (nunca float); Stock solo se modifica vía el caso de uso de ajuste.
type Product struct {
	ID           int
	Code         string // código único, ej. "PROD-001", sin espacios en blanco
	Name         string
	Description  string
	SupplierID   int // FK → Supplier, validada en creación y en cada update
	UnitPrice    decimal.Decimal
	Stock        int
	RegisteredAt time.Time
}
