package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/infrastructure/memory"
)

// TestSequence_MonotonicaDesdeUno la secuencia arranca en 1 y nunca repite.
func TestSequence_MonotonicaDesdeUno(t *testing.T) {
	s := memory.NewSequence()
	assert.Equal(t, 1, s.Next())
	assert.Equal(t, 2, s.Next())
	assert.Equal(t, 3, s.Next())
}

// TestStore_IdsNoSeReutilizanTrasEliminar eliminar un registro no devuelve
// su id al pool: el siguiente alta recibe un id nuevo.
func TestStore_IdsNoSeReutilizanTrasEliminar(t *testing.T) {
	store := memory.NewStore(memory.Config{Name: "Test"})
	repo := memory.NewSupplierRepository(store)

	a := &entity.Supplier{Name: "Uno", TaxID: "J-1"}
	b := &entity.Supplier{Name: "Dos", TaxID: "J-2"}
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))
	require.Equal(t, 1, a.ID)
	require.Equal(t, 2, b.ID)

	require.NoError(t, repo.Delete(2))

	c := &entity.Supplier{Name: "Tres", TaxID: "J-3"}
	require.NoError(t, repo.Create(c))
	assert.Equal(t, 3, c.ID, "el id 2 eliminado nunca debe reutilizarse")
}

// TestStore_SecuenciasIndependientesPorTipo cada tipo de entidad tiene su
// propio contador.
func TestStore_SecuenciasIndependientesPorTipo(t *testing.T) {
	store := memory.NewStore(memory.Config{Name: "Test"})
	suppliers := memory.NewSupplierRepository(store)
	products := memory.NewProductRepository(store)

	s := &entity.Supplier{Name: "Acme", TaxID: "J-12345678-9"}
	require.NoError(t, suppliers.Create(s))

	p := &entity.Product{Code: "PROD-001", Name: "Tornillo", SupplierID: s.ID, UnitPrice: decimal.NewFromInt(10)}
	require.NoError(t, products.Create(p))

	assert.Equal(t, 1, s.ID)
	assert.Equal(t, 1, p.ID, "las secuencias de producto y proveedor son independientes")
}

// TestProductRepo_LasLecturasSonCopias mutar lo devuelto por GetByID no debe
// tocar el registro vivo del almacén.
func TestProductRepo_LasLecturasSonCopias(t *testing.T) {
	store := memory.NewStore(memory.Config{Name: "Test"})
	repo := memory.NewProductRepository(store)

	require.NoError(t, repo.Create(&entity.Product{Code: "PROD-001", Name: "Original", UnitPrice: decimal.NewFromInt(5)}))

	borrador, err := repo.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, borrador)
	borrador.Name = "Editado sin confirmar"

	vivo, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Original", vivo.Name, "una edición sin confirmar nunca debe verse en el almacén")
}

// TestProductRepo_DeleteCompactaYPreservaOrden eliminar del medio conserva
// el orden relativo del resto.
func TestProductRepo_DeleteCompactaYPreservaOrden(t *testing.T) {
	store := memory.NewStore(memory.Config{Name: "Test"})
	repo := memory.NewProductRepository(store)

	for _, code := range []string{"A", "B", "C", "D"} {
		require.NoError(t, repo.Create(&entity.Product{Code: code, Name: code, UnitPrice: decimal.NewFromInt(1)}))
	}

	require.NoError(t, repo.Delete(2)) // elimina "B"

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "A", list[0].Code)
	assert.Equal(t, "C", list[1].Code)
	assert.Equal(t, "D", list[2].Code)
}

// TestSupplierRepo_GetByTaxID búsqueda exacta por RIF.
func TestSupplierRepo_GetByTaxID(t *testing.T) {
	store := memory.NewStore(memory.Config{Name: "Test"})
	repo := memory.NewSupplierRepository(store)

	require.NoError(t, repo.Create(&entity.Supplier{Name: "Acme", TaxID: "J-12345678-9"}))

	s, err := repo.GetByTaxID("J-12345678-9")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Acme", s.Name)

	ninguno, err := repo.GetByTaxID("J-00000000-0")
	require.NoError(t, err)
	assert.Nil(t, ninguno, "RIF inexistente debe devolver nil sin error")
}

// TestProductRepo_SearchIgnoraMayusculasYTildes la búsqueda parcial debe
// encontrar "Azúcar Refinada" con el filtro "azucar".
func TestProductRepo_SearchIgnoraMayusculasYTildes(t *testing.T) {
	store := memory.NewStore(memory.Config{Name: "Test"})
	repo := memory.NewProductRepository(store)

	require.NoError(t, repo.Create(&entity.Product{Code: "AZ-01", Name: "Azúcar Refinada", UnitPrice: decimal.NewFromInt(3)}))
	require.NoError(t, repo.Create(&entity.Product{Code: "CF-01", Name: "Café Molido", UnitPrice: decimal.NewFromInt(8)}))

	matches, err := repo.SearchByName("azucar")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "AZ-01", matches[0].Code)
}

// TestTransactionRepo_ListByCounterparty filtra por tipo y contraparte.
func TestTransactionRepo_ListByCounterparty(t *testing.T) {
	store := memory.NewStore(memory.Config{Name: "Test"})
	repo := memory.NewTransactionRepository(store)

	require.NoError(t, repo.Create(&entity.Transaction{Kind: entity.TransactionSale, ProductID: 1, CounterpartyID: 7, Quantity: 1, UnitPrice: decimal.NewFromInt(2)}))
	require.NoError(t, repo.Create(&entity.Transaction{Kind: entity.TransactionPurchase, ProductID: 1, CounterpartyID: 7, Quantity: 1, UnitPrice: decimal.NewFromInt(2)}))
	require.NoError(t, repo.Create(&entity.Transaction{Kind: entity.TransactionSale, ProductID: 2, CounterpartyID: 9, Quantity: 1, UnitPrice: decimal.NewFromInt(2)}))

	ventas, err := repo.ListByCounterparty(entity.TransactionSale, 7)
	require.NoError(t, err)
	require.Len(t, ventas, 1, "solo la venta al cliente 7, no la compra al proveedor 7")
	assert.Equal(t, 1, ventas[0].ID)
}
