package repository

import "github.com/tu-usuario/inventario/internal/domain/entity"

// ProductRepository define el puerto de almacenamiento para Product.
// Las lecturas devuelven copias: mutar el resultado nunca toca el almacén.
// GetByID y GetByCode devuelven (nil, nil) si no hay coincidencia.
type ProductRepository interface {
	// Create asigna el ID autoincremental y agrega el producto al final.
	Create(product *entity.Product) error
	GetByID(id int) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// SearchByName y SearchByCode hacen coincidencia parcial, sin
	// distinguir mayúsculas ni tildes, en orden de inserción.
	SearchByName(filter string) ([]*entity.Product, error)
	SearchByCode(filter string) ([]*entity.Product, error)
	// ListBySupplier filtra por igualdad exacta del FK.
	ListBySupplier(supplierID int) ([]*entity.Product, error)
	List() ([]*entity.Product, error)
	// Update reemplaza el registro completo identificado por product.ID.
	Update(product *entity.Product) error
	Delete(id int) error
}
