package cli

import (
	"fmt"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain/entity"
)

func (m *Menu) transactionMenu() error {
	for {
		fmt.Fprintln(m.out, "\n=== TRANSACCIONES ===")
		fmt.Fprintln(m.out, "1. Registrar compra")
		fmt.Fprintln(m.out, "2. Registrar venta")
		fmt.Fprintln(m.out, "3. Buscar por ID")
		fmt.Fprintln(m.out, "4. Listar por producto")
		fmt.Fprintln(m.out, "5. Listar todas")
		fmt.Fprintln(m.out, "0. Volver")

		opt, err := m.p.option("Opción")
		if err != nil {
			return err
		}
		switch opt {
		case 1:
			err = m.registerTransaction(entity.TransactionPurchase)
		case 2:
			err = m.registerTransaction(entity.TransactionSale)
		case 3:
			err = m.showTransaction()
		case 4:
			err = m.listTransactionsByProduct()
		case 5:
			err = m.listTransactions()
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

func (m *Menu) registerTransaction(kind entity.TransactionKind) error {
	counterpartyLabel := "ID del proveedor"
	if kind == entity.TransactionSale {
		counterpartyLabel = "ID del cliente"
	}
	fmt.Fprintf(m.out, "\n=== REGISTRAR %s ===\n", kind)
	fmt.Fprintln(m.out, "Escriba 0 o CANCELAR en cualquier campo para abortar.")

	productID, err := m.p.number("ID del producto")
	if err != nil {
		return m.handle(err)
	}
	counterpartyID, err := m.p.number(counterpartyLabel)
	if err != nil {
		return m.handle(err)
	}
	quantity, err := m.p.number("Cantidad")
	if err != nil {
		return m.handle(err)
	}
	unitPrice, err := m.p.money("Precio unitario (>0)")
	if err != nil {
		return m.handle(err)
	}
	notes, err := m.p.text("Notas (opcional)")
	if err != nil {
		return m.handle(err)
	}

	total := unitPrice.Mul(decimalFromInt(quantity))
	fmt.Fprintln(m.out, "\n=== RESUMEN DE LA TRANSACCIÓN ===")
	fmt.Fprintf(m.out, "Tipo:        %s\n", kind)
	fmt.Fprintf(m.out, "Producto:    %d\n", productID)
	fmt.Fprintf(m.out, "Contraparte: %d\n", counterpartyID)
	fmt.Fprintf(m.out, "Cantidad:    %d\n", quantity)
	fmt.Fprintf(m.out, "P. unitario: %s\n", unitPrice.StringFixed(2))
	fmt.Fprintf(m.out, "Total:       %s\n", total.StringFixed(2))
	fmt.Fprintln(m.out, "Nota: registrar la transacción NO ajusta el stock del producto.")

	ok, err := m.p.confirm("¿Registrar transacción?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Registro descartado.")
		return nil
	}
	resp, err := m.transactions.Register(dto.RegisterTransactionRequest{
		Kind:           kind,
		ProductID:      productID,
		CounterpartyID: counterpartyID,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		Notes:          notes,
	})
	if err != nil {
		m.report(err)
		return nil
	}
	m.log.Info().Int("id", resp.ID).Str("tipo", string(resp.Kind)).Msg("transacción registrada")
	fmt.Fprintf(m.out, "Transacción registrada exitosamente con id %d.\n", resp.ID)
	return nil
}

func (m *Menu) showTransaction() error {
	id, err := m.p.number("ID de la transacción")
	if err != nil {
		return m.handle(err)
	}
	t, err := m.transactions.GetByID(id)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, "\n=== TRANSACCIÓN ===")
	fmt.Fprintf(m.out, "ID:          %d\n", t.ID)
	fmt.Fprintf(m.out, "Tipo:        %s\n", t.Kind)
	fmt.Fprintf(m.out, "Producto:    %d\n", t.ProductID)
	fmt.Fprintf(m.out, "Contraparte: %d\n", t.CounterpartyID)
	fmt.Fprintf(m.out, "Cantidad:    %d\n", t.Quantity)
	fmt.Fprintf(m.out, "P. unitario: %s\n", t.UnitPrice.StringFixed(2))
	fmt.Fprintf(m.out, "Total:       %s\n", t.Total.StringFixed(2))
	fmt.Fprintf(m.out, "Fecha:       %s\n", t.Date.Format(dateLayout))
	fmt.Fprintf(m.out, "Notas:       %s\n", t.Notes)
	return nil
}

func (m *Menu) listTransactionsByProduct() error {
	productID, err := m.p.number("ID del producto")
	if err != nil {
		return m.handle(err)
	}
	list, err := m.transactions.ListByProduct(productID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No hay transacciones para ese producto.")
		return nil
	}
	renderTransactions(m.out, list)
	return nil
}

func (m *Menu) listTransactions() error {
	list, err := m.transactions.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No hay transacciones registradas.")
		return nil
	}
	renderTransactions(m.out, list)
	return nil
}
