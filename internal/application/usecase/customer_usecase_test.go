package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
)

func TestCustomerCreate_Valido(t *testing.T) {
	f := newFixture()

	resp := f.mustCustomer(t, "V-11222333")

	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "V-11222333", resp.IDDocument)
}

func TestCustomerCreate_CedulaDuplicada(t *testing.T) {
	f := newFixture()
	f.mustCustomer(t, "V-11222333")

	_, err := f.customers.Create(dto.CreateCustomerRequest{
		Name:       "Otro Cliente",
		IDDocument: "V-11222333",
		Email:      "otro@example.com",
	})

	require.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "V-11222333")
}

func TestCustomerUpdate_CedulaExcluyeAlPropio(t *testing.T) {
	f := newFixture()
	c := f.mustCustomer(t, "V-11222333")

	resp, err := f.customers.Update(c.ID, dto.UpdateCustomerRequest{
		IDDocument: ptr("V-11222333"),
		Phone:      ptr("0424-0000000"),
	})

	require.NoError(t, err)
	assert.Equal(t, "0424-0000000", resp.Phone)
}

func TestCustomerUpdate_NoEncontrado(t *testing.T) {
	f := newFixture()
	_, err := f.customers.Update(99, dto.UpdateCustomerRequest{Name: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerDelete_ConVentasAdvierte(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	p := f.mustProduct(t, "PROD-001", s.ID, 5)
	c := f.mustCustomer(t, "V-11222333")

	_, err := f.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           "VENTA",
		ProductID:      p.ID,
		CounterpartyID: c.ID,
		Quantity:       1,
		UnitPrice:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	err = f.customers.Delete(c.ID, false)
	require.ErrorIs(t, err, domain.ErrReferenceInUse)

	require.NoError(t, f.customers.Delete(c.ID, true))
	_, getErr := f.customers.GetByID(c.ID)
	assert.ErrorIs(t, getErr, domain.ErrNotFound)
}

func TestCustomerDelete_SinVentas(t *testing.T) {
	f := newFixture()
	c := f.mustCustomer(t, "V-11222333")

	require.NoError(t, f.customers.Delete(c.ID, false))
}
