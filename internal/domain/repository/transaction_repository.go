package repository

import "github.com/tu-usuario/inventario/internal/domain/entity"

// TransactionRepository define el puerto de almacenamiento para Transaction.
// Las transacciones son de solo inserción: no hay update ni delete.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id int) (*entity.Transaction, error)
	ListByProduct(productID int) ([]*entity.Transaction, error)
	// ListByCounterparty filtra por tipo y por la contraparte (proveedor
	// en COMPRA, cliente en VENTA).
	ListByCounterparty(kind entity.TransactionKind, counterpartyID int) ([]*entity.Transaction, error)
	List() ([]*entity.Transaction, error)
}
