package memory

import (
	"fmt"

	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
	"github.com/tu-usuario/inventario/internal/domain/search"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo adaptador en memoria de SupplierRepository sobre el Store.
type SupplierRepo struct {
	store *Store
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(store *Store) *SupplierRepo {
	return &SupplierRepo{store: store}
}

// Create asigna el siguiente id y agrega el proveedor al final.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	supplier.ID = r.store.supplierSeq.Next()
	r.store.suppliers.Append(*supplier)
	return nil
}

// GetByID busca por id; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id int) (*entity.Supplier, error) {
	idx := r.store.suppliers.Find(func(s entity.Supplier) bool { return s.ID == id })
	if idx < 0 {
		return nil, nil
	}
	s := r.store.suppliers.At(idx)
	return &s, nil
}

// GetByTaxID busca por RIF exacto; (nil, nil) si no existe.
func (r *SupplierRepo) GetByTaxID(taxID string) (*entity.Supplier, error) {
	idx := r.store.suppliers.Find(func(s entity.Supplier) bool { return s.TaxID == taxID })
	if idx < 0 {
		return nil, nil
	}
	s := r.store.suppliers.At(idx)
	return &s, nil
}

// SearchByName coincidencia parcial sobre el nombre.
func (r *SupplierRepo) SearchByName(filter string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.store.suppliers.All() {
		if search.Contains(s.Name, filter) {
			out = append(out, &s)
		}
	}
	return out, nil
}

// List todos los proveedores en orden de inserción.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.store.suppliers.All() {
		out = append(out, &s)
	}
	return out, nil
}

// Update reemplaza el registro completo identificado por supplier.ID.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	idx := r.store.suppliers.Find(func(s entity.Supplier) bool { return s.ID == supplier.ID })
	if idx < 0 {
		return fmt.Errorf("%w: proveedor con id %d", domain.ErrNotFound, supplier.ID)
	}
	r.store.suppliers.Set(idx, *supplier)
	return nil
}

// Delete elimina por id compactando la colección. La regla de bloqueo por
// productos asociados vive en el caso de uso, no aquí.
func (r *SupplierRepo) Delete(id int) error {
	idx := r.store.suppliers.Find(func(s entity.Supplier) bool { return s.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: proveedor con id %d", domain.ErrNotFound, id)
	}
	r.store.suppliers.RemoveAt(idx)
	return nil
}
