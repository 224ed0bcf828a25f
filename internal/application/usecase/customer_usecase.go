package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD de clientes. La cédula es única. La
// eliminación advierte si existen ventas registradas con el cliente, con el
// mismo esquema de force que la de productos.
type CustomerUseCase struct {
	customers    repository.CustomerRepository
	transactions repository.TransactionRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, transactions repository.TransactionRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, transactions: transactions}
}

// Create valida y registra un cliente nuevo.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := requireText("nombre", in.Name, maxNameLen); err != nil {
		return nil, err
	}
	if err := requireText("cédula", in.IDDocument, maxIDDocumentLen); err != nil {
		return nil, err
	}
	if err := optionalText("teléfono", in.Phone, maxPhoneLen); err != nil {
		return nil, err
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := optionalText("dirección", in.Address, maxAddressLen); err != nil {
		return nil, err
	}
	existing, err := uc.customers.GetByIDDocument(in.IDDocument)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("cédula", in.IDDocument)
	}
	customer := &entity.Customer{
		Name:         in.Name,
		IDDocument:   in.IDDocument,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		RegisteredAt: time.Now(),
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por id.
func (uc *CustomerUseCase) GetByID(id int) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente con id %d", domain.ErrNotFound, id)
	}
	return toCustomerResponse(customer), nil
}

// SearchByName búsqueda parcial por nombre.
func (uc *CustomerUseCase) SearchByName(filter string) ([]*dto.CustomerResponse, error) {
	list, err := uc.customers.SearchByName(filter)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// List todos los clientes en orden de inserción.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// Update aplica un borrador de edición sobre una copia y la confirma de
// forma atómica. La unicidad de la cédula excluye al propio cliente.
func (uc *CustomerUseCase) Update(id int, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente con id %d", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		if err := requireText("nombre", *in.Name, maxNameLen); err != nil {
			return nil, err
		}
		customer.Name = *in.Name
	}
	if in.IDDocument != nil {
		if err := requireText("cédula", *in.IDDocument, maxIDDocumentLen); err != nil {
			return nil, err
		}
		existing, err := uc.customers.GetByIDDocument(*in.IDDocument)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.Duplicate("cédula", *in.IDDocument)
		}
		customer.IDDocument = *in.IDDocument
	}
	if in.Phone != nil {
		if err := optionalText("teléfono", *in.Phone, maxPhoneLen); err != nil {
			return nil, err
		}
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return nil, err
		}
		customer.Email = *in.Email
	}
	if in.Address != nil {
		if err := optionalText("dirección", *in.Address, maxAddressLen); err != nil {
			return nil, err
		}
		customer.Address = *in.Address
	}
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente. Si existen ventas registradas con él solo
// procede con force; las ventas quedan con referencia huérfana.
func (uc *CustomerUseCase) Delete(id int, force bool) error {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("%w: cliente con id %d", domain.ErrNotFound, id)
	}
	if !force {
		sales, err := uc.transactions.ListByCounterparty(entity.TransactionSale, id)
		if err != nil {
			return err
		}
		if len(sales) > 0 {
			return domain.InUse("ventas", len(sales))
		}
	}
	return uc.customers.Delete(id)
}

// IDDocumentInUse indica si otro cliente (distinto de excludeID) ya usa la
// cédula.
func (uc *CustomerUseCase) IDDocumentInUse(idDocument string, excludeID int) (bool, error) {
	existing, err := uc.customers.GetByIDDocument(idDocument)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.ID != excludeID, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		IDDocument:   c.IDDocument,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		RegisteredAt: c.RegisteredAt,
	}
}

func toCustomerResponses(list []*entity.Customer) []*dto.CustomerResponse {
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out
}
