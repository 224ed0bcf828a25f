package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/application/usecase"
	"github.com/tu-usuario/inventario/internal/infrastructure/memory"
)

// fixture arma un almacén nuevo con los cuatro casos de uso cableados, igual
// que lo hace el main. Cada test recibe su propio almacén aislado.
type fixture struct {
	products     *usecase.ProductUseCase
	suppliers    *usecase.SupplierUseCase
	customers    *usecase.CustomerUseCase
	transactions *usecase.TransactionUseCase
}

func newFixture() *fixture {
	store := memory.NewStore(memory.Config{Name: "Tienda Test", TaxID: "J-00000000-0"})
	productRepo := memory.NewProductRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)
	return &fixture{
		products:     usecase.NewProductUseCase(productRepo, supplierRepo, transactionRepo),
		suppliers:    usecase.NewSupplierUseCase(supplierRepo, productRepo),
		customers:    usecase.NewCustomerUseCase(customerRepo, transactionRepo),
		transactions: usecase.NewTransactionUseCase(transactionRepo, productRepo, supplierRepo, customerRepo),
	}
}

func (f *fixture) mustSupplier(t *testing.T, taxID string) *dto.SupplierResponse {
	t.Helper()
	resp, err := f.suppliers.Create(dto.CreateSupplierRequest{
		Name:    "Distribuidora Acme",
		TaxID:   taxID,
		Phone:   "0212-5551234",
		Email:   "ventas@acme.com.ve",
		Address: "Av. Principal, Caracas",
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) mustProduct(t *testing.T, code string, supplierID, stock int) *dto.ProductResponse {
	t.Helper()
	resp, err := f.products.Create(dto.CreateProductRequest{
		Code:        code,
		Name:        "Producto " + code,
		Description: "de prueba",
		SupplierID:  supplierID,
		UnitPrice:   decimal.NewFromInt(10),
		Stock:       stock,
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) mustCustomer(t *testing.T, idDocument string) *dto.CustomerResponse {
	t.Helper()
	resp, err := f.customers.Create(dto.CreateCustomerRequest{
		Name:       "María Pérez",
		IDDocument: idDocument,
		Phone:      "0414-5556789",
		Email:      "maria@example.com",
		Address:    "Calle 5, Valencia",
	})
	require.NoError(t, err)
	return resp
}

func ptr[T any](v T) *T { return &v }
