package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tipo de transacción: compra a proveedor o venta a cliente.
type TransactionKind string

const (
	TransactionPurchase TransactionKind = "COMPRA"
	TransactionSale     TransactionKind = "VENTA"
)

// Valid indica si el tipo es uno de los dos soportados.
func (k TransactionKind) Valid() bool {
	return k == TransactionPurchase || k == TransactionSale
}

// Transaction registra una compra o venta. CounterpartyID apunta a un
// proveedor si es COMPRA y a un cliente si es VENTA. Total nunca se captura:
// siempre se recalcula como Quantity × UnitPrice al registrar.
// El registro de una transacción NO ajusta el stock del producto; ese ajuste
// es una operación separada y explícita.
type Transaction struct {
	ID             int
	Kind           TransactionKind
	ProductID      int // FK → Product
	CounterpartyID int // FK → Supplier (COMPRA) o Customer (VENTA)
	Quantity       int
	UnitPrice      decimal.Decimal
	Total          decimal.Decimal
	Date           time.Time
	Notes          string
}
