package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
)

func TestTransactionRegister_CompraValida(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	p := f.mustProduct(t, "PROD-001", s.ID, 5)

	resp, err := f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionPurchase,
		ProductID:      p.ID,
		CounterpartyID: s.ID,
		Quantity:       4,
		UnitPrice:      decimal.NewFromFloat(2.50),
		Notes:          "reposición semanal",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.ID)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(10)), "total = 4 × 2.50")
	assert.False(t, resp.Date.IsZero())
}

// El total siempre se recalcula de cantidad × precio; no hay forma de
// inyectar un total arbitrario desde la entrada.
func TestTransactionRegister_TotalRecalculado(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	p := f.mustProduct(t, "PROD-001", s.ID, 5)
	c := f.mustCustomer(t, "V-11222333")

	resp, err := f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionSale,
		ProductID:      p.ID,
		CounterpartyID: c.ID,
		Quantity:       3,
		UnitPrice:      decimal.NewFromFloat(7.99),
	})

	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(23.97)))
}

// Registrar una venta nunca descuenta stock automáticamente.
func TestTransactionRegister_NoTocaElStock(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	p := f.mustProduct(t, "PROD-001", s.ID, 5)
	c := f.mustCustomer(t, "V-11222333")

	_, err := f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionSale,
		ProductID:      p.ID,
		CounterpartyID: c.ID,
		Quantity:       3,
		UnitPrice:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	vivo, getErr := f.products.GetByID(p.ID)
	require.NoError(t, getErr)
	assert.Equal(t, 5, vivo.Stock)
}

func TestTransactionRegister_ContraparteSegunTipo(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	p := f.mustProduct(t, "PROD-001", s.ID, 5)

	// Una COMPRA exige que la contraparte exista como proveedor.
	_, err := f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionPurchase,
		ProductID:      p.ID,
		CounterpartyID: 99,
		Quantity:       1,
		UnitPrice:      decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, domain.ErrReferenceNotFound)
	assert.Contains(t, err.Error(), "proveedor")

	// Y una VENTA valida contra clientes.
	_, err = f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionSale,
		ProductID:      p.ID,
		CounterpartyID: 99,
		Quantity:       1,
		UnitPrice:      decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, domain.ErrReferenceNotFound)
	assert.Contains(t, err.Error(), "cliente")
}

func TestTransactionRegister_ProductoInexistente(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")

	_, err := f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionPurchase,
		ProductID:      42,
		CounterpartyID: s.ID,
		Quantity:       1,
		UnitPrice:      decimal.NewFromInt(1),
	})

	require.ErrorIs(t, err, domain.ErrReferenceNotFound)
	assert.Contains(t, err.Error(), "producto")
}

func TestTransactionRegister_EntradasInvalidas(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	p := f.mustProduct(t, "PROD-001", s.ID, 5)

	_, err := f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           "TRUEQUE",
		ProductID:      p.ID,
		CounterpartyID: s.ID,
		Quantity:       1,
		UnitPrice:      decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)

	_, err = f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionPurchase,
		ProductID:      p.ID,
		CounterpartyID: s.ID,
		Quantity:       0,
		UnitPrice:      decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)

	_, err = f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionPurchase,
		ProductID:      p.ID,
		CounterpartyID: s.ID,
		Quantity:       1,
		UnitPrice:      decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestTransactionListByProduct_OrdenDeRegistro(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	p := f.mustProduct(t, "PROD-001", s.ID, 5)
	c := f.mustCustomer(t, "V-11222333")

	for i := 1; i <= 3; i++ {
		_, err := f.transactions.Register(dto.RegisterTransactionRequest{
			Kind:           entity.TransactionSale,
			ProductID:      p.ID,
			CounterpartyID: c.ID,
			Quantity:       i,
			UnitPrice:      decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}

	list, err := f.transactions.ListByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, tx := range list {
		assert.Equal(t, i+1, tx.ID)
		assert.Equal(t, i+1, tx.Quantity)
	}
}

func TestTransactionListSalesByCustomer(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	p := f.mustProduct(t, "PROD-001", s.ID, 5)
	c := f.mustCustomer(t, "V-11222333")

	_, err := f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionSale,
		ProductID:      p.ID,
		CounterpartyID: c.ID,
		Quantity:       1,
		UnitPrice:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	_, err = f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           entity.TransactionPurchase,
		ProductID:      p.ID,
		CounterpartyID: s.ID,
		Quantity:       1,
		UnitPrice:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	ventas, err := f.transactions.ListSalesByCustomer(c.ID)
	require.NoError(t, err)
	assert.Len(t, ventas, 1)
}

func TestTransactionGetByID_NoEncontrado(t *testing.T) {
	f := newFixture()
	_, err := f.transactions.GetByID(5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
