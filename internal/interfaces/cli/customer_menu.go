package cli

import (
	"fmt"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
)

func (m *Menu) customerMenu() error {
	for {
		fmt.Fprintln(m.out, "\n=== CLIENTES ===")
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
			err = m.createCustomer()
		case 2:
			err = m.searchCustomers()
		case 3:
			err = m.updateCustomer()
		case 4:
			err = m.listCustomers()
		case 5:
			err = m.deleteCustomer()
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

func (m *Menu) createCustomer() error {
	fmt.Fprintln(m.out, "\n=== REGISTRAR CLIENTE ===")
	fmt.Fprintln(m.out, "Escriba 0 o CANCELAR en cualquier campo para abortar.")

	name, err := m.p.text("Nombre completo")
	if err != nil {
		return m.handle(err)
	}
	idDocument, err := m.p.text("Cédula o RIF")
	if err != nil {
		return m.handle(err)
	}
	used, err := m.customers.IDDocumentInUse(idDocument, 0)
	if err != nil {
		return err
	}
	if used {
		m.report(domain.Duplicate("cédula", idDocument))
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

	fmt.Fprintln(m.out, "\n=== RESUMEN DEL CLIENTE ===")
	fmt.Fprintf(m.out, "Nombre:    %s\n", name)
	fmt.Fprintf(m.out, "Cédula:    %s\n", idDocument)
	fmt.Fprintf(m.out, "Teléfono:  %s\n", phone)
	fmt.Fprintf(m.out, "Email:     %s\n", email)
	fmt.Fprintf(m.out, "Dirección: %s\n", address)

	ok, err := m.p.confirm("¿Guardar cliente?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Registro descartado.")
		return nil
	}
	resp, err := m.customers.Create(dto.CreateCustomerRequest{
		Name:       name,
		IDDocument: idDocument,
		Phone:      phone,
		Email:      email,
		Address:    address,
	})
	if err != nil {
		m.report(err)
		return nil
	}
	m.log.Info().Int("id", resp.ID).Str("cedula", resp.IDDocument).Msg("cliente registrado")
	fmt.Fprintf(m.out, "Cliente registrado exitosamente con id %d.\n", resp.ID)
	return nil
}

func (m *Menu) searchCustomers() error {
	fmt.Fprintln(m.out, "\n=== BUSCAR CLIENTE ===")
	fmt.Fprintln(m.out, "1. Por ID")
	fmt.Fprintln(m.out, "2. Por nombre (parcial)")
	fmt.Fprintln(m.out, "0. Cancelar")

	opt, err := m.p.option("Opción")
	if err != nil {
		return err
	}
	switch opt {
	case 1:
		id, err := m.p.number("ID del cliente")
		if err != nil {
			return m.handle(err)
		}
		resp, err := m.customers.GetByID(id)
		if err != nil {
			m.report(err)
			return nil
		}
		m.showCustomer(resp)
	case 2:
		filter, err := m.p.text("Parte del nombre")
		if err != nil {
			return m.handle(err)
		}
		list, err := m.customers.SearchByName(filter)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(m.out, "No se encontraron coincidencias.")
			return nil
		}
		renderCustomers(m.out, list)
	case 0:
	default:
		fmt.Fprintln(m.out, "Opción inválida.")
	}
	return nil
}

func (m *Menu) showCustomer(c *dto.CustomerResponse) {
	fmt.Fprintln(m.out, "\n=== CLIENTE ===")
	fmt.Fprintf(m.out, "ID:        %d\n", c.ID)
	fmt.Fprintf(m.out, "Nombre:    %s\n", c.Name)
	fmt.Fprintf(m.out, "Cédula:    %s\n", c.IDDocument)
	fmt.Fprintf(m.out, "Teléfono:  %s\n", c.Phone)
	fmt.Fprintf(m.out, "Email:     %s\n", c.Email)
	fmt.Fprintf(m.out, "Dirección: %s\n", c.Address)
	fmt.Fprintf(m.out, "Registrado: %s\n", c.RegisteredAt.Format(dateLayout))
}

func (m *Menu) listCustomers() error {
	list, err := m.customers.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No hay clientes registrados.")
		return nil
	}
	renderCustomers(m.out, list)
	return nil
}

func (m *Menu) updateCustomer() error {
	id, err := m.p.number("ID del cliente a actualizar")
	if err != nil {
		return m.handle(err)
	}
	current, err := m.customers.GetByID(id)
	if err != nil {
		m.report(err)
		return nil
	}
	m.showCustomer(current)

	var draft dto.UpdateCustomerRequest
	for {
		fmt.Fprintln(m.out, "\n¿Qué desea editar?")
		fmt.Fprintln(m.out, "1. Nombre")
		fmt.Fprintln(m.out, "2. Cédula")
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
			idDocument, err := m.p.text("Nueva cédula")
			if err != nil {
				return m.handle(err)
			}
			used, err := m.customers.IDDocumentInUse(idDocument, id)
			if err != nil {
				return err
			}
			if used {
				m.report(domain.Duplicate("cédula", idDocument))
				continue
			}
			draft.IDDocument = &idDocument
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
			if _, err := m.customers.Update(id, draft); err != nil {
				m.report(err)
				return nil
			}
			m.log.Info().Int("id", id).Msg("cliente actualizado")
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

func (m *Menu) deleteCustomer() error {
	id, err := m.p.number("ID del cliente a eliminar")
	if err != nil {
		return m.handle(err)
	}
	current, err := m.customers.GetByID(id)
	if err != nil {
		m.report(err)
		return nil
	}
	m.showCustomer(current)

	// Advertencia blanda: las ventas registradas quedarían huérfanas.
	sales, err := m.transactions.ListSalesByCustomer(id)
	if err != nil {
		return err
	}
	if len(sales) > 0 {
		fmt.Fprintf(m.out, "\nADVERTENCIA: este cliente tiene %d venta(s) registrada(s); quedarán con referencia huérfana.\n", len(sales))
	}
	ok, err := m.p.confirm("¿Eliminar cliente?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Eliminación cancelada.")
		return nil
	}
	if err := m.customers.Delete(id, true); err != nil {
		m.report(err)
		return nil
	}
	m.log.Info().Int("id", id).Msg("cliente eliminado")
	fmt.Fprintln(m.out, "Cliente eliminado exitosamente.")
	return nil
}
