package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario/internal/domain/entity"
)

// RegisterTransactionRequest entrada para registrar una compra o venta.
// El total no se captura: siempre se recalcula como Quantity × UnitPrice.
type RegisterTransactionRequest struct {
	Kind           entity.TransactionKind
	ProductID      int
	CounterpartyID int // proveedor si COMPRA, cliente si VENTA
	Quantity       int
	UnitPrice      decimal.Decimal
	Notes          string
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID             int
	Kind           entity.TransactionKind
	ProductID      int
	CounterpartyID int
	Quantity       int
	UnitPrice      decimal.Decimal
	Total          decimal.Decimal
	Date           time.Time
	Notes          string
}
