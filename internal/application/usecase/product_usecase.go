package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD de productos. Hace cumplir la unicidad
// del código, la existencia del proveedor referenciado y que el stock nunca
// quede negativo. Toda validación se completa antes de mutar el almacén: una
// operación o deja todos los invariantes en pie, o no cambia nada.
type ProductUseCase struct {
	products     repository.ProductRepository
	suppliers    repository.SupplierRepository
	transactions repository.TransactionRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	transactions repository.TransactionRepository,
) *ProductUseCase {
	return &ProductUseCase{products: products, suppliers: suppliers, transactions: transactions}
}

// Create valida y registra un producto nuevo. La fecha de registro se deriva
// aquí; el id lo asigna el almacén al confirmar.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateCode(in.Code); err != nil {
		return nil, err
	}
	if err := requireText("nombre", in.Name, maxNameLen); err != nil {
		return nil, err
	}
	if err := optionalText("descripción", in.Description, maxDescriptionLen); err != nil {
		return nil, err
	}
	if err := validatePrice("precio", in.UnitPrice); err != nil {
		return nil, err
	}
	if err := validateStock(in.Stock); err != nil {
		return nil, err
	}
	existing, err := uc.products.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("código", in.Code)
	}
	if err := uc.supplierExists(in.SupplierID); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		SupplierID:   in.SupplierID,
		UnitPrice:    in.UnitPrice,
		Stock:        in.Stock,
		RegisteredAt: time.Now(),
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto con id %d", domain.ErrNotFound, id)
	}
	return toProductResponse(product), nil
}

// SearchByName búsqueda parcial por nombre, sin mayúsculas ni tildes.
func (uc *ProductUseCase) SearchByName(filter string) ([]*dto.ProductResponse, error) {
	list, err := uc.products.SearchByName(filter)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// SearchByCode búsqueda parcial por código.
func (uc *ProductUseCase) SearchByCode(filter string) ([]*dto.ProductResponse, error) {
	list, err := uc.products.SearchByCode(filter)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListBySupplier productos de un proveedor (igualdad exacta del FK).
func (uc *ProductUseCase) ListBySupplier(supplierID int) ([]*dto.ProductResponse, error) {
	list, err := uc.products.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// List todos los productos en orden de inserción.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update aplica un borrador de edición sobre una copia del registro y, si
// toda la revalidación pasa, la copia reemplaza al registro vivo de forma
// atómica. La unicidad del código excluye al propio producto; el proveedor
// se revalida en cada cambio de FK.
func (uc *ProductUseCase) Update(id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto con id %d", domain.ErrNotFound, id)
	}
	if in.Code != nil {
		if err := validateCode(*in.Code); err != nil {
			return nil, err
		}
		existing, err := uc.products.GetByCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.Duplicate("código", *in.Code)
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		if err := requireText("nombre", *in.Name, maxNameLen); err != nil {
			return nil, err
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		if err := optionalText("descripción", *in.Description, maxDescriptionLen); err != nil {
			return nil, err
		}
		product.Description = *in.Description
	}
	if in.SupplierID != nil {
		if err := uc.supplierExists(*in.SupplierID); err != nil {
			return nil, err
		}
		product.SupplierID = *in.SupplierID
	}
	if in.UnitPrice != nil {
		if err := validatePrice("precio", *in.UnitPrice); err != nil {
			return nil, err
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.Stock != nil {
		if err := validateStock(*in.Stock); err != nil {
			return nil, err
		}
		product.Stock = *in.Stock
	}
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdjustStock aplica un delta con signo al stock. Si el resultado quedaría
// negativo rechaza sin mutar, reportando disponible y solicitado.
func (uc *ProductUseCase) AdjustStock(id, delta int) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto con id %d", domain.ErrNotFound, id)
	}
	next := product.Stock + delta
	if next < 0 {
		return nil, domain.Invalid("stock",
			fmt.Sprintf("disponible %d, el ajuste %+d lo dejaría negativo", product.Stock, delta))
	}
	product.Stock = next
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Si existen transacciones asociadas la
// eliminación solo procede con force (advertencia, no bloqueo): las
// transacciones existentes quedan con referencia huérfana.
func (uc *ProductUseCase) Delete(id int, force bool) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto con id %d", domain.ErrNotFound, id)
	}
	if !force {
		txs, err := uc.transactions.ListByProduct(id)
		if err != nil {
			return err
		}
		if len(txs) > 0 {
			return domain.InUse("transacciones", len(txs))
		}
	}
	return uc.products.Delete(id)
}

// CodeInUse indica si otro producto (distinto de excludeID) ya usa el
// código. excludeID permite que una edición no choque consigo misma;
// con excludeID 0 se comprueba contra todos.
func (uc *ProductUseCase) CodeInUse(code string, excludeID int) (bool, error) {
	existing, err := uc.products.GetByCode(code)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.ID != excludeID, nil
}

// SupplierExists indica si el proveedor referenciado existe.
func (uc *ProductUseCase) SupplierExists(id int) (bool, error) {
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return false, err
	}
	return supplier != nil, nil
}

func (uc *ProductUseCase) supplierExists(id int) error {
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.MissingReference("proveedor", id)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		SupplierID:   p.SupplierID,
		UnitPrice:    p.UnitPrice,
		Stock:        p.Stock,
		RegisteredAt: p.RegisteredAt,
	}
}

func toProductResponses(list []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out
}
