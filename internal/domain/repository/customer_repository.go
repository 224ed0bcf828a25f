package repository

import "github.com/tu-usuario/inventario/internal/domain/entity"

// CustomerRepository define el puerto de almacenamiento para Customer.
// Mismo contrato de copias y (nil, nil) que ProductRepository.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int) (*entity.Customer, error)
	GetByIDDocument(idDocument string) (*entity.Customer, error)
	SearchByName(filter string) ([]*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int) error
}
