package memory

import (
	"fmt"

	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
	"github.com/tu-usuario/inventario/internal/domain/search"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador en memoria de ProductRepository sobre el Store.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// Create asigna el siguiente id y agrega el producto al final.
func (r *ProductRepo) Create(product *entity.Product) error {
	product.ID = r.store.productSeq.Next()
	r.store.products.Append(*product)
	return nil
}

// GetByID busca por id; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	idx := r.store.products.Find(func(p entity.Product) bool { return p.ID == id })
	if idx < 0 {
		return nil, nil
	}
	p := r.store.products.At(idx)
	return &p, nil
}

// GetByCode busca por código exacto; (nil, nil) si no existe.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	idx := r.store.products.Find(func(p entity.Product) bool { return p.Code == code })
	if idx < 0 {
		return nil, nil
	}
	p := r.store.products.At(idx)
	return &p, nil
}

// SearchByName coincidencia parcial sobre el nombre, en orden de inserción.
func (r *ProductRepo) SearchByName(filter string) ([]*entity.Product, error) {
	return r.collect(func(p entity.Product) bool { return search.Contains(p.Name, filter) }), nil
}

// SearchByCode coincidencia parcial sobre el código.
func (r *ProductRepo) SearchByCode(filter string) ([]*entity.Product, error) {
	return r.collect(func(p entity.Product) bool { return search.Contains(p.Code, filter) }), nil
}

// ListBySupplier productos cuyo FK de proveedor coincide exactamente.
func (r *ProductRepo) ListBySupplier(supplierID int) ([]*entity.Product, error) {
	return r.collect(func(p entity.Product) bool { return p.SupplierID == supplierID }), nil
}

// List todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.collect(func(entity.Product) bool { return true }), nil
}

// Update reemplaza el registro completo identificado por product.ID.
func (r *ProductRepo) Update(product *entity.Product) error {
	idx := r.store.products.Find(func(p entity.Product) bool { return p.ID == product.ID })
	if idx < 0 {
		return fmt.Errorf("%w: producto con id %d", domain.ErrNotFound, product.ID)
	}
	r.store.products.Set(idx, *product)
	return nil
}

// Delete elimina por id compactando la colección.
func (r *ProductRepo) Delete(id int) error {
	idx := r.store.products.Find(func(p entity.Product) bool { return p.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: producto con id %d", domain.ErrNotFound, id)
	}
	r.store.products.RemoveAt(idx)
	return nil
}

// collect copia los productos que cumplen pred, en orden de inserción.
func (r *ProductRepo) collect(pred func(entity.Product) bool) []*entity.Product {
	var out []*entity.Product
	for _, p := range r.store.products.All() {
		if pred(p) {
			out = append(out, &p)
		}
	}
	return out
}
