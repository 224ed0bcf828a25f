package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// TransactionUseCase registro y consulta de compras/ventas. Las
// transacciones son de solo inserción.
//
// Registrar una transacción NO ajusta el stock del producto: el ajuste de
// stock es su propia operación con su propia confirmación. Acoplar ambas
// cosas queda como decisión futura, no se asume aquí.
type TransactionUseCase struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	suppliers    repository.SupplierRepository
	customers    repository.CustomerRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	transactions repository.TransactionRepository,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	customers repository.CustomerRepository,
) *TransactionUseCase {
	return &TransactionUseCase{
		transactions: transactions,
		products:     products,
		suppliers:    suppliers,
		customers:    customers,
	}
}

// Register valida y registra una compra o venta. La contraparte se valida
// contra proveedores si es COMPRA y contra clientes si es VENTA; el total se
// recalcula siempre como cantidad × precio unitario y la fecha es la del día.
func (uc *TransactionUseCase) Register(in dto.RegisterTransactionRequest) (*dto.TransactionResponse, error) {
	if !in.Kind.Valid() {
		return nil, domain.Invalid("tipo", fmt.Sprintf("debe ser %s o %s", entity.TransactionPurchase, entity.TransactionSale))
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("cantidad", "debe ser mayor que cero")
	}
	if err := validatePrice("precio unitario", in.UnitPrice); err != nil {
		return nil, err
	}
	if err := optionalText("notas", in.Notes, maxDescriptionLen); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.MissingReference("producto", in.ProductID)
	}
	if err := uc.counterpartyExists(in.Kind, in.CounterpartyID); err != nil {
		return nil, err
	}
	tx := &entity.Transaction{
		Kind:           in.Kind,
		ProductID:      in.ProductID,
		CounterpartyID: in.CounterpartyID,
		Quantity:       in.Quantity,
		UnitPrice:      in.UnitPrice,
		Total:          in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Date:           time.Now(),
		Notes:          in.Notes,
	}
	if err := uc.transactions.Create(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// GetByID obtiene una transacción por id.
func (uc *TransactionUseCase) GetByID(id int) (*dto.TransactionResponse, error) {
	tx, err := uc.transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("%w: transacción con id %d", domain.ErrNotFound, id)
	}
	return toTransactionResponse(tx), nil
}

// ListByProduct transacciones de un producto, en orden de registro.
func (uc *TransactionUseCase) ListByProduct(productID int) ([]*dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListSalesByCustomer ventas registradas con un cliente.
func (uc *TransactionUseCase) ListSalesByCustomer(customerID int) ([]*dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByCounterparty(entity.TransactionSale, customerID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// List todas las transacciones en orden de registro.
func (uc *TransactionUseCase) List() ([]*dto.TransactionResponse, error) {
	list, err := uc.transactions.List()
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

func (uc *TransactionUseCase) counterpartyExists(kind entity.TransactionKind, id int) error {
	if kind == entity.TransactionPurchase {
		supplier, err := uc.suppliers.GetByID(id)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.MissingReference("proveedor", id)
		}
		return nil
	}
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.MissingReference("cliente", id)
	}
	return nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:             t.ID,
		Kind:           t.Kind,
		ProductID:      t.ProductID,
		CounterpartyID: t.CounterpartyID,
		Quantity:       t.Quantity,
		UnitPrice:      t.UnitPrice,
		Total:          t.Total,
		Date:           t.Date,
		Notes:          t.Notes,
	}
}

func toTransactionResponses(list []*entity.Transaction) []*dto.TransactionResponse {
	out := make([]*dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	return out
}
