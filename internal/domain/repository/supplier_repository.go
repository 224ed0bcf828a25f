package repository

import "github.com/tu-usuario/inventario/internal/domain/entity"

// SupplierRepository define el puerto de almacenamiento para Supplier.
// Mismo contrato de copias y (nil, nil) que ProductRepository.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int) (*entity.Supplier, error)
	GetByTaxID(taxID string) (*entity.Supplier, error)
	SearchByName(filter string) ([]*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id int) error
}
