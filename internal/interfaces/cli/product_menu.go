package cli

import (
	"fmt"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
)

func (m *Menu) productMenu() error {
	for {
		fmt.Fprintln(m.out, "\n=== PRODUCTOS ===")
		fmt.Fprintln(m.out, "1. Registrar")
		fmt.Fprintln(m.out, "2. Buscar")
		fmt.Fprintln(m.out, "3. Actualizar")
		fmt.Fprintln(m.out, "4. Ajustar stock")
		fmt.Fprintln(m.out, "5. Listar todos")
		fmt.Fprintln(m.out, "6. Eliminar")
		fmt.Fprintln(m.out, "0. Volver")

		opt, err := m.p.option("Opción")
		if err != nil {
			return err
		}
		switch opt {
		case 1:
			err = m.createProduct()
		case 2:
			err = m.searchProducts()
		case 3:
			err = m.updateProduct()
		case 4:
			err = m.adjustStock()
		case 5:
			err = m.listProducts()
		case 6:
			err = m.deleteProduct()
		case 0:
			return nil
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) createProduct() error {
	fmt.Fprintln(m.out, "\n=== REGISTRAR PRODUCTO ===")
	fmt.Fprintln(m.out, "Escriba 0 o CANCELAR en cualquier campo para abortar.")

	code, err := m.p.text("Código del producto")
	if err != nil {
		return m.handle(err)
	}
	// Rechazo inmediato de duplicados, antes de pedir el resto.
	used, err := m.products.CodeInUse(code, 0)
	if err != nil {
		return err
	}
	if used {
		m.report(domain.Duplicate("código", code))
		return nil
	}
	name, err := m.p.text("Nombre")
	if err != nil {
		return m.handle(err)
	}
	description, err := m.p.text("Descripción")
	if err != nil {
		return m.handle(err)
	}
	supplierID, err := m.p.number("ID del proveedor")
	if err != nil {
		return m.handle(err)
	}
	exists, err := m.products.SupplierExists(supplierID)
	if err != nil {
		return err
	}
	if !exists {
		m.report(domain.MissingReference("proveedor", supplierID))
		return nil
	}
	price, err := m.p.money("Precio unitario (>0)")
	if err != nil {
		return m.handle(err)
	}
	// Un stock inicial de 0 es válido; aquí "0" no cancela.
	stock, err := m.p.signedNumber("Stock inicial (>=0)")
	if err != nil {
		return m.handle(err)
	}

	fmt.Fprintln(m.out, "\n=== RESUMEN DEL PRODUCTO ===")
	fmt.Fprintf(m.out, "Código:      %s\n", code)
	fmt.Fprintf(m.out, "Nombre:      %s\n", name)
	fmt.Fprintf(m.out, "Descripción: %s\n", description)
	fmt.Fprintf(m.out, "Proveedor:   %d (%s)\n", supplierID, m.supplierName(supplierID))
	fmt.Fprintf(m.out, "Precio:      %s\n", price.StringFixed(2))
	fmt.Fprintf(m.out, "Stock:       %d\n", stock)

	ok, err := m.p.confirm("¿Guardar producto?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Registro descartado.")
		return nil
	}
	resp, err := m.products.Create(dto.CreateProductRequest{
		Code:        code,
		Name:        name,
		Description: description,
		SupplierID:  supplierID,
		UnitPrice:   price,
		Stock:       stock,
	})
	if err != nil {
		m.report(err)
		return nil
	}
	m.log.Info().Int("id", resp.ID).Str("codigo", resp.Code).Msg("producto registrado")
	fmt.Fprintf(m.out, "Producto registrado exitosamente con id %d.\n", resp.ID)
	return nil
}

func (m *Menu) searchProducts() error {
	fmt.Fprintln(m.out, "\n=== BUSCAR PRODUCTO ===")
	fmt.Fprintln(m.out, "1. Por ID")
	fmt.Fprintln(m.out, "2. Por nombre (parcial)")
	fmt.Fprintln(m.out, "3. Por código (parcial)")
	fmt.Fprintln(m.out, "4. Listar por proveedor")
	fmt.Fprintln(m.out, "0. Cancelar")

	opt, err := m.p.option("Opción")
	if err != nil {
		return err
	}
	switch opt {
	case 1:
		id, err := m.p.number("ID del producto")
		if err != nil {
			return m.handle(err)
		}
		resp, err := m.products.GetByID(id)
		if err != nil {
			m.report(err)
			return nil
		}
		m.showProduct(resp)
	case 2:
		filter, err := m.p.text("Parte del nombre")
		if err != nil {
			return m.handle(err)
		}
		list, err := m.products.SearchByName(filter)
		if err != nil {
			return err
		}
		m.showProductList(list)
	case 3:
		filter, err := m.p.text("Parte del código")
		if err != nil {
			return m.handle(err)
		}
		list, err := m.products.SearchByCode(filter)
		if err != nil {
			return err
		}
		m.showProductList(list)
	case 4:
		supplierID, err := m.p.number("ID del proveedor")
		if err != nil {
			return m.handle(err)
		}
		list, err := m.products.ListBySupplier(supplierID)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(m.out, "No hay productos asociados a ese proveedor.")
			return nil
		}
		renderProducts(m.out, list, m.supplierName)
	case 0:
	default:
		fmt.Fprintln(m.out, "Opción inválida.")
	}
	return nil
}

func (m *Menu) showProduct(p *dto.ProductResponse) {
	fmt.Fprintln(m.out, "\n=== PRODUCTO ===")
	fmt.Fprintf(m.out, "ID:          %d\n", p.ID)
	fmt.Fprintf(m.out, "Código:      %s\n", p.Code)
	fmt.Fprintf(m.out, "Nombre:      %s\n", p.Name)
	fmt.Fprintf(m.out, "Descripción: %s\n", p.Description)
	fmt.Fprintf(m.out, "Proveedor:   %d (%s)\n", p.SupplierID, m.supplierName(p.SupplierID))
	fmt.Fprintf(m.out, "Precio:      %s\n", p.UnitPrice.StringFixed(2))
	fmt.Fprintf(m.out, "Stock:       %d\n", p.Stock)
	fmt.Fprintf(m.out, "Registrado:  %s\n", p.RegisteredAt.Format(dateLayout))
}

func (m *Menu) showProductList(list []*dto.ProductResponse) {
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No se encontraron coincidencias.")
		return
	}
	renderProducts(m.out, list, m.supplierName)
}

func (m *Menu) listProducts() error {
	list, err := m.products.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No hay productos registrados.")
		return nil
	}
	renderProducts(m.out, list, m.supplierName)
	return nil
}

func (m *Menu) updateProduct() error {
	id, err := m.p.number("ID del producto a actualizar")
	if err != nil {
		return m.handle(err)
	}
	current, err := m.products.GetByID(id)
	if err != nil {
		m.report(err)
		return nil
	}
	m.showProduct(current)

	// Borrador: nada toca el registro vivo hasta confirmar en "Guardar".
	var draft dto.UpdateProductRequest
	for {
		fmt.Fprintln(m.out, "\n¿Qué desea editar?")
		fmt.Fprintln(m.out, "1. Código")
		fmt.Fprintln(m.out, "2. Nombre")
		fmt.Fprintln(m.out, "3. Descripción")
		fmt.Fprintln(m.out, "4. Proveedor")
		fmt.Fprintln(m.out, "5. Precio")
		fmt.Fprintln(m.out, "6. Stock")
		fmt.Fprintln(m.out, "7. Guardar cambios")
		fmt.Fprintln(m.out, "0. Cancelar sin guardar")

		opt, err := m.p.option("Opción")
		if err != nil {
			return err
		}
		switch opt {
		case 1:
			code, err := m.p.text("Nuevo código")
			if err != nil {
				return m.handle(err)
			}
			used, err := m.products.CodeInUse(code, id)
			if err != nil {
				return err
			}
			if used {
				m.report(domain.Duplicate("código", code))
				continue
			}
			draft.Code = &code
		case 2:
			name, err := m.p.text("Nuevo nombre")
			if err != nil {
				return m.handle(err)
			}
			draft.Name = &name
		case 3:
			description, err := m.p.text("Nueva descripción")
			if err != nil {
				return m.handle(err)
			}
			draft.Description = &description
		case 4:
			supplierID, err := m.p.number("Nuevo ID de proveedor")
			if err != nil {
				return m.handle(err)
			}
			exists, err := m.products.SupplierExists(supplierID)
			if err != nil {
				return err
			}
			if !exists {
				m.report(domain.MissingReference("proveedor", supplierID))
				continue
			}
			draft.SupplierID = &supplierID
		case 5:
			price, err := m.p.money("Nuevo precio (>0)")
			if err != nil {
				return m.handle(err)
			}
			draft.UnitPrice = &price
		case 6:
			stock, err := m.p.signedNumber("Nuevo stock (>=0)")
			if err != nil {
				return m.handle(err)
			}
			draft.Stock = &stock
		case 7:
			ok, err := m.p.confirm("¿Confirmar cambios?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(m.out, "Cambios descartados.")
				return nil
			}
			if _, err := m.products.Update(id, draft); err != nil {
				m.report(err)
				return nil
			}
			m.log.Info().Int("id", id).Msg("producto actualizado")
			fmt.Fprintln(m.out, "Cambios guardados exitosamente.")
			return nil
		case 0:
			fmt.Fprintln(m.out, "Cancelado. No se guardaron cambios.")
			return nil
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}
	}
}

func (m *Menu) adjustStock() error {
	id, err := m.p.number("ID del producto")
	if err != nil {
		return m.handle(err)
	}
	current, err := m.products.GetByID(id)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, "\n=== AJUSTAR STOCK ===")
	fmt.Fprintf(m.out, "Producto:     %s\n", current.Name)
	fmt.Fprintf(m.out, "Stock actual: %d\n", current.Stock)

	delta, err := m.p.signedNumber("Ajuste (+ aumenta, - disminuye, CANCELAR aborta)")
	if err != nil {
		return m.handle(err)
	}
	next := current.Stock + delta
	if next < 0 {
		m.report(domain.Invalid("stock",
			fmt.Sprintf("disponible %d, el ajuste %+d lo dejaría negativo", current.Stock, delta)))
		return nil
	}
	fmt.Fprintf(m.out, "Stock final sería: %d\n", next)

	ok, err := m.p.confirm("¿Confirmar cambio?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Cambio cancelado.")
		return nil
	}
	resp, err := m.products.AdjustStock(id, delta)
	if err != nil {
		m.report(err)
		return nil
	}
	m.log.Info().Int("id", id).Int("stock", resp.Stock).Msg("stock ajustado")
	fmt.Fprintln(m.out, "Stock actualizado exitosamente.")
	return nil
}

func (m *Menu) deleteProduct() error {
	id, err := m.p.number("ID del producto a eliminar")
	if err != nil {
		return m.handle(err)
	}
	current, err := m.products.GetByID(id)
	if err != nil {
		m.report(err)
		return nil
	}
	m.showProduct(current)

	// Advertencia blanda: las transacciones existentes quedarían huérfanas.
	txs, err := m.transactions.ListByProduct(id)
	if err != nil {
		return err
	}
	if len(txs) > 0 {
		fmt.Fprintf(m.out, "\nADVERTENCIA: este producto tiene %d transacción(es) asociada(s); quedarán con referencia huérfana.\n", len(txs))
	}
	ok, err := m.p.confirm("¿Eliminar producto?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Eliminación cancelada.")
		return nil
	}
	if err := m.products.Delete(id, true); err != nil {
		m.report(err)
		return nil
	}
	m.log.Info().Int("id", id).Msg("producto eliminado")
	fmt.Fprintln(m.out, "Producto eliminado exitosamente.")
	return nil
}
