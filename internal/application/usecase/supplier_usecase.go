package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD de proveedores. El RIF es único; un
// proveedor referenciado por algún producto no puede eliminarse (bloqueo
// duro, sin cascada).
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository, products repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, products: products}
}

// Create valida y registra un proveedor nuevo.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := uc.validateFields(in.Name, in.TaxID, in.Phone, in.Email, in.Address); err != nil {
		return nil, err
	}
	existing, err := uc.suppliers.GetByTaxID(in.TaxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("RIF", in.TaxID)
	}
	supplier := &entity.Supplier{
		Name:         in.Name,
		TaxID:        in.TaxID,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		RegisteredAt: time.Now(),
	}
	if err := uc.suppliers.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por id.
func (uc *SupplierUseCase) GetByID(id int) (*dto.SupplierResponse, error) {
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor con id %d", domain.ErrNotFound, id)
	}
	return toSupplierResponse(supplier), nil
}

// SearchByName búsqueda parcial por nombre.
func (uc *SupplierUseCase) SearchByName(filter string) ([]*dto.SupplierResponse, error) {
	list, err := uc.suppliers.SearchByName(filter)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(list), nil
}

// List todos los proveedores en orden de inserción.
func (uc *SupplierUseCase) List() ([]*dto.SupplierResponse, error) {
	list, err := uc.suppliers.List()
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(list), nil
}

// Update aplica un borrador de edición sobre una copia y la confirma de
// forma atómica. La unicidad del RIF excluye al propio proveedor.
func (uc *SupplierUseCase) Update(id int, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor con id %d", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		if err := requireText("nombre", *in.Name, maxNameLen); err != nil {
			return nil, err
		}
		supplier.Name = *in.Name
	}
	if in.TaxID != nil {
		if err := requireText("RIF", *in.TaxID, maxTaxIDLen); err != nil {
			return nil, err
		}
		existing, err := uc.suppliers.GetByTaxID(*in.TaxID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.Duplicate("RIF", *in.TaxID)
		}
		supplier.TaxID = *in.TaxID
	}
	if in.Phone != nil {
		if err := optionalText("teléfono", *in.Phone, maxPhoneLen); err != nil {
			return nil, err
		}
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return nil, err
		}
		supplier.Email = *in.Email
	}
	if in.Address != nil {
		if err := optionalText("dirección", *in.Address, maxAddressLen); err != nil {
			return nil, err
		}
		supplier.Address = *in.Address
	}
	if err := uc.suppliers.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor. Se rechaza de plano si algún producto lo
// referencia; no hay cascada ni override.
func (uc *SupplierUseCase) Delete(id int) error {
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return fmt.Errorf("%w: proveedor con id %d", domain.ErrNotFound, id)
	}
	referencing, err := uc.products.ListBySupplier(id)
	if err != nil {
		return err
	}
	if len(referencing) > 0 {
		return domain.InUse("productos", len(referencing))
	}
	return uc.suppliers.Delete(id)
}

// TaxIDInUse indica si otro proveedor (distinto de excludeID) ya usa el RIF.
func (uc *SupplierUseCase) TaxIDInUse(taxID string, excludeID int) (bool, error) {
	existing, err := uc.suppliers.GetByTaxID(taxID)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.ID != excludeID, nil
}

func (uc *SupplierUseCase) validateFields(name, taxID, phone, email, address string) error {
	if err := requireText("nombre", name, maxNameLen); err != nil {
		return err
	}
	if err := requireText("RIF", taxID, maxTaxIDLen); err != nil {
		return err
	}
	if err := optionalText("teléfono", phone, maxPhoneLen); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	return optionalText("dirección", address, maxAddressLen)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		TaxID:        s.TaxID,
		Phone:        s.Phone,
		Email:        s.Email,
		Address:      s.Address,
		RegisteredAt: s.RegisteredAt,
	}
}

func toSupplierResponses(list []*entity.Supplier) []*dto.SupplierResponse {
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return out
}
