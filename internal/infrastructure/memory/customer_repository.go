package memory

import (
	"fmt"

	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
	"github.com/tu-usuario/inventario/internal/domain/search"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo adaptador en memoria de CustomerRepository sobre el Store.
type CustomerRepo struct {
	store *Store
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(store *Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

// Create asigna el siguiente id y agrega el cliente al final.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	customer.ID = r.store.customerSeq.Next()
	r.store.customers.Append(*customer)
	return nil
}

// GetByID busca por id; (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id int) (*entity.Customer, error) {
	idx := r.store.customers.Find(func(c entity.Customer) bool { return c.ID == id })
	if idx < 0 {
		return nil, nil
	}
	c := r.store.customers.At(idx)
	return &c, nil
}

// GetByIDDocument busca por cédula/RIF exacto; (nil, nil) si no existe.
func (r *CustomerRepo) GetByIDDocument(idDocument string) (*entity.Customer, error) {
	idx := r.store.customers.Find(func(c entity.Customer) bool { return c.IDDocument == idDocument })
	if idx < 0 {
		return nil, nil
	}
	c := r.store.customers.At(idx)
	return &c, nil
}

// SearchByName coincidencia parcial sobre el nombre.
func (r *CustomerRepo) SearchByName(filter string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.store.customers.All() {
		if search.Contains(c.Name, filter) {
			out = append(out, &c)
		}
	}
	return out, nil
}

// List todos los clientes en orden de inserción.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.store.customers.All() {
		out = append(out, &c)
	}
	return out, nil
}

// Update reemplaza el registro completo identificado por customer.ID.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	idx := r.store.customers.Find(func(c entity.Customer) bool { return c.ID == customer.ID })
	if idx < 0 {
		return fmt.Errorf("%w: cliente con id %d", domain.ErrNotFound, customer.ID)
	}
	r.store.customers.Set(idx, *customer)
	return nil
}

// Delete elimina por id compactando la colección.
func (r *CustomerRepo) Delete(id int) error {
	idx := r.store.customers.Find(func(c entity.Customer) bool { return c.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: cliente con id %d", domain.ErrNotFound, id)
	}
	r.store.customers.RemoveAt(idx)
	return nil
}
