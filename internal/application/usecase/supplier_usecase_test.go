package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
)

func TestSupplierCreate_Valido(t *testing.T) {
	f := newFixture()

	resp := f.mustSupplier(t, "J-12345678-9")

	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "J-12345678-9", resp.TaxID)
	assert.False(t, resp.RegisteredAt.IsZero())
}

func TestSupplierCreate_RIFDuplicado(t *testing.T) {
	f := newFixture()
	f.mustSupplier(t, "J-12345678-9")

	_, err := f.suppliers.Create(dto.CreateSupplierRequest{
		Name:  "Otra Distribuidora",
		TaxID: "J-12345678-9",
		Email: "otra@example.com",
	})

	require.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "J-12345678-9")
}

func TestSupplierCreate_EmailInvalido(t *testing.T) {
	f := newFixture()

	casos := []string{"sin-arroba.com", "user@dominio", ""}
	for _, email := range casos {
		_, err := f.suppliers.Create(dto.CreateSupplierRequest{
			Name:  "Proveedor",
			TaxID: "J-1",
			Email: email,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidValue, "email %q debe rechazarse", email)
	}

	// El punto debe venir después del arroba.
	_, err := f.suppliers.Create(dto.CreateSupplierRequest{
		Name:  "Proveedor",
		TaxID: "J-1",
		Email: "user.name@dominio",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestSupplierUpdate_RIFExcluyeAlPropio(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")

	resp, err := f.suppliers.Update(s.ID, dto.UpdateSupplierRequest{
		TaxID: ptr("J-12345678-9"),
		Name:  ptr("Acme Renombrada"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Renombrada", resp.Name)
}

func TestSupplierUpdate_RIFDeOtro(t *testing.T) {
	f := newFixture()
	f.mustSupplier(t, "J-111")
	s2 := f.mustSupplier(t, "J-222")

	_, err := f.suppliers.Update(s2.ID, dto.UpdateSupplierRequest{TaxID: ptr("J-111")})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestSupplierDelete_BloqueadoPorProductos(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	f.mustProduct(t, "PROD-001", s.ID, 5)

	err := f.suppliers.Delete(s.ID)

	require.ErrorIs(t, err, domain.ErrReferenceInUse)
	assert.Contains(t, err.Error(), "productos", "el error debe nombrar la relación que bloquea")

	// Ambas colecciones quedan intactas.
	proveedores, pErr := f.suppliers.List()
	require.NoError(t, pErr)
	assert.Len(t, proveedores, 1)
	productos, prErr := f.products.List()
	require.NoError(t, prErr)
	assert.Len(t, productos, 1)
}

func TestSupplierDelete_SinReferencias(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")

	require.NoError(t, f.suppliers.Delete(s.ID))

	_, err := f.suppliers.GetByID(s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierDelete_DesbloqueadoTrasEliminarProductos(t *testing.T) {
	f := newFixture()
	s := f.mustSupplier(t, "J-12345678-9")
	p := f.mustProduct(t, "PROD-001", s.ID, 5)

	require.ErrorIs(t, f.suppliers.Delete(s.ID), domain.ErrReferenceInUse)
	require.NoError(t, f.products.Delete(p.ID, false))
	assert.NoError(t, f.suppliers.Delete(s.ID))
}

func TestSupplierSearchByName_Parcial(t *testing.T) {
	f := newFixture()
	f.mustSupplier(t, "J-111")

	matches, err := f.suppliers.SearchByName("acme")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	ninguno, err := f.suppliers.SearchByName("inexistente")
	require.NoError(t, err)
	assert.Empty(t, ninguno)
}
