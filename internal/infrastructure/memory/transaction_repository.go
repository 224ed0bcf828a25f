package memory

import (
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo adaptador en memoria de TransactionRepository sobre el
// Store. Solo inserción y lectura.
type TransactionRepo struct {
	store *Store
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(store *Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

// Create asigna el siguiente id y agrega la transacción al final.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	tx.ID = r.store.transactionSeq.Next()
	r.store.transactions.Append(*tx)
	return nil
}

// GetByID busca por id; (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(id int) (*entity.Transaction, error) {
	idx := r.store.transactions.Find(func(t entity.Transaction) bool { return t.ID == id })
	if idx < 0 {
		return nil, nil
	}
	t := r.store.transactions.At(idx)
	return &t, nil
}

// ListByProduct transacciones del producto, en orden de registro.
func (r *TransactionRepo) ListByProduct(productID int) ([]*entity.Transaction, error) {
	return r.collect(func(t entity.Transaction) bool { return t.ProductID == productID }), nil
}

// ListByCounterparty transacciones de un tipo con una contraparte dada.
func (r *TransactionRepo) ListByCounterparty(kind entity.TransactionKind, counterpartyID int) ([]*entity.Transaction, error) {
	return r.collect(func(t entity.Transaction) bool {
		return t.Kind == kind && t.CounterpartyID == counterpartyID
	}), nil
}

// List todas las transacciones en orden de registro.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	return r.collect(func(entity.Transaction) bool { return true }), nil
}

func (r *TransactionRepo) collect(pred func(entity.Transaction) bool) []*entity.Transaction {
	var out []*entity.Transaction
	for _, t := range r.store.transactions.All() {
		if pred(t) {
			out = append(out, &t)
		}
	}
	return out
}
