package cli

import (
	"fmt"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
)

func (m *Menu) supplierMenu() error {
	for {
		fmt.Fprintln(m.out, "\n=== PROVEEDORES ===")
		fmt.Fprintln(m.out, "1. Registrar")
		fmt.Fprintln(m.out, "2. Buscar")
		fmt.Fprintln(m.out, "3. Actualizar")
		fmt.Fprintln(m.out, "4. Listar todos")
		fmt.Fprintln(m.out, "5. Eliminar")
		fmt.Fprintln(m.out, "0. Volver")

		opt, err := m.p.option("Opción")
		if err != nil {
			return err
		}
		switch opt {
		case 1:
			err = m.createSupplier()
		case 2:
			err = m.searchSuppliers()
		case 3:
			err = m.updateSupplier()
		case 4:
			err = m.listSuppliers()
		case 5:
			err = m.deleteSupplier()
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

func (m *Menu) createSupplier() error {
	fmt.Fprintln(m.out, "\n=== REGISTRAR PROVEEDOR ===")
	fmt.Fprintln(m.out, "Escriba 0 o CANCELAR en cualquier campo para abortar.")

	name, err := m.p.text("Nombre")
	if err != nil {
		return m.handle(err)
	}
	taxID, err := m.p.text("RIF")
	if err != nil {
		return m.handle(err)
	}
	used, err := m.suppliers.TaxIDInUse(taxID, 0)
	if err != nil {
		return err
	}
	if used {
		m.report(domain.Duplicate("RIF", taxID))
		return nil
	}
	phone, err := m.p.text("Teléfono")
	if err != nil {
		return m.handle(err)
	}
	email, err := m.p.text("Email")
	if err != nil {
		return m.handle(err)
	}
	address, err := m.p.text("Dirección")
	if err != nil {
		return m.handle(err)
	}

	fmt.Fprintln(m.out, "\n=== RESUMEN DEL PROVEEDOR ===")
	fmt.Fprintf(m.out, "Nombre:    %s\n", name)
	fmt.Fprintf(m.out, "RIF:       %s\n", taxID)
	fmt.Fprintf(m.out, "Teléfono:  %s\n", phone)
	fmt.Fprintf(m.out, "Email:     %s\n", email)
	fmt.Fprintf(m.out, "Dirección: %s\n", address)

	ok, err := m.p.confirm("¿Guardar proveedor?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Registro descartado.")
		return nil
	}
	resp, err := m.suppliers.Create(dto.CreateSupplierRequest{
		Name:    name,
		TaxID:   taxID,
		Phone:   phone,
		Email:   email,
		Address: address,
	})
	if err != nil {
		m.report(err)
		return nil
	}
	m.log.Info().Int("id", resp.ID).Str("rif", resp.TaxID).Msg("proveedor registrado")
	fmt.Fprintf(m.out, "Proveedor registrado exitosamente con id %d.\n", resp.ID)
	return nil
}

func (m *Menu) searchSuppliers() error {
	fmt.Fprintln(m.out, "\n=== BUSCAR PROVEEDOR ===")
	fmt.Fprintln(m.out, "1. Por ID")
	fmt.Fprintln(m.out, "2. Por nombre (parcial)")
	fmt.Fprintln(m.out, "0. Cancelar")

	opt, err := m.p.option("Opción")
	if err != nil {
		return err
	}
	switch opt {
	case 1:
		id, err := m.p.number("ID del proveedor")
		if err != nil {
			return m.handle(err)
		}
		resp, err := m.suppliers.GetByID(id)
		if err != nil {
			m.report(err)
			return nil
		}
		m.showSupplier(resp)
	case 2:
		filter, err := m.p.text("Parte del nombre")
		if err != nil {
			return m.handle(err)
		}
		list, err := m.suppliers.SearchByName(filter)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(m.out, "No se encontraron coincidencias.")
			return nil
		}
		renderSuppliers(m.out, list)
	case 0:
	default:
		fmt.Fprintln(m.out, "Opción inválida.")
	}
	return nil
}

func (m *Menu) showSupplier(s *dto.SupplierResponse) {
	fmt.Fprintln(m.out, "\n=== PROVEEDOR ===")
	fmt.Fprintf(m.out, "ID:        %d\n", s.ID)
	fmt.Fprintf(m.out, "Nombre:    %s\n", s.Name)
	fmt.Fprintf(m.out, "RIF:       %s\n", s.TaxID)
	fmt.Fprintf(m.out, "Teléfono:  %s\n", s.Phone)
	fmt.Fprintf(m.out, "Email:     %s\n", s.Email)
	fmt.Fprintf(m.out, "Dirección: %s\n", s.Address)
	fmt.Fprintf(m.out, "Registrado: %s\n", s.RegisteredAt.Format(dateLayout))
}

func (m *Menu) listSuppliers() error {
	list, err := m.suppliers.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No hay proveedores registrados.")
		return nil
	}
	renderSuppliers(m.out, list)
	return nil
}

func (m *Menu) updateSupplier() error {
	id, err := m.p.number("ID del proveedor a actualizar")
	if err != nil {
		return m.handle(err)
	}
	current, err := m.suppliers.GetByID(id)
	if err != nil {
		m.report(err)
		return nil
	}
	m.showSupplier(current)

	var draft dto.UpdateSupplierRequest
	for {
		fmt.Fprintln(m.out, "\n¿Qué desea editar?")
		fmt.Fprintln(m.out, "1. Nombre")
		fmt.Fprintln(m.out, "2. RIF")
		fmt.Fprintln(m.out, "3. Teléfono")
		fmt.Fprintln(m.out, "4. Email")
		fmt.Fprintln(m.out, "5. Dirección")
		fmt.Fprintln(m.out, "6. Guardar cambios")
		fmt.Fprintln(m.out, "0. Cancelar sin guardar")

		opt, err := m.p.option("Opción")
		if err != nil {
			return err
		}
		switch opt {
		case 1:
			name, err := m.p.text("Nuevo nombre")
			if err != nil {
				return m.handle(err)
			}
			draft.Name = &name
		case 2:
			taxID, err := m.p.text("Nuevo RIF")
			if err != nil {
				return m.handle(err)
			}
			used, err := m.suppliers.TaxIDInUse(taxID, id)
			if err != nil {
				return err
			}
			if used {
				m.report(domain.Duplicate("RIF", taxID))
				continue
			}
			draft.TaxID = &taxID
		case 3:
			phone, err := m.p.text("Nuevo teléfono")
			if err != nil {
				return m.handle(err)
			}
			draft.Phone = &phone
		case 4:
			email, err := m.p.text("Nuevo email")
			if err != nil {
				return m.handle(err)
			}
			draft.Email = &email
		case 5:
			address, err := m.p.text("Nueva dirección")
			if err != nil {
				return m.handle(err)
			}
			draft.Address = &address
		case 6:
			ok, err := m.p.confirm("¿Confirmar cambios?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(m.out, "Cambios descartados.")
				return nil
			}
			if _, err := m.suppliers.Update(id, draft); err != nil {
				m.report(err)
				return nil
			}
			m.log.Info().Int("id", id).Msg("proveedor actualizado")
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

func (m *Menu) deleteSupplier() error {
	id, err := m.p.number("ID del proveedor a eliminar")
	if err != nil {
		return m.handle(err)
	}
	current, err := m.suppliers.GetByID(id)
	if err != nil {
		m.report(err)
		return nil
	}
	m.showSupplier(current)

	// Bloqueo duro: con productos asociados se rechaza de plano, sin
	// siquiera pedir confirmación.
	referencing, err := m.products.ListBySupplier(id)
	if err != nil {
		return err
	}
	if len(referencing) > 0 {
		m.report(domain.InUse("productos", len(referencing)))
		return nil
	}
	ok, err := m.p.confirm("¿Eliminar proveedor?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Eliminación cancelada.")
		return nil
	}
	if err := m.suppliers.Delete(id); err != nil {
		m.report(err)
		return nil
	}
	m.log.Info().Int("id", id).Msg("proveedor eliminado")
	fmt.Fprintln(m.out, "Proveedor eliminado exitosamente.")
	return nil
}
