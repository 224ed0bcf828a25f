package cli

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/tu-usuario/inventario/internal/application/dto"
)

// dateLayout formato de fecha para mostrar (solo presentación; las
// entidades guardan time.Time completos).
const dateLayout = "2006-01-02"

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

// renderProducts tabla de productos; supplierName resuelve el nombre del
// proveedor para mostrar ("Desconocido" si ya no existe).
func renderProducts(out io.Writer, items []*dto.ProductResponse, supplierName func(int) string) {
	table := newTable(out, []string{"ID", "Código", "Nombre", "Proveedor", "Precio", "Stock"})
	for _, p := range items {
		table.Append([]string{
			strconv.Itoa(p.ID),
			p.Code,
			p.Name,
			supplierName(p.SupplierID),
			p.UnitPrice.StringFixed(2),
			strconv.Itoa(p.Stock),
		})
	}
	table.Render()
}

func renderSuppliers(out io.Writer, items []*dto.SupplierResponse) {
	table := newTable(out, []string{"ID", "Nombre", "RIF", "Teléfono", "Email", "Registrado"})
	for _, s := range items {
		table.Append([]string{
			strconv.Itoa(s.ID),
			s.Name,
			s.TaxID,
			s.Phone,
			s.Email,
			s.RegisteredAt.Format(dateLayout),
		})
	}
	table.Render()
}

func renderCustomers(out io.Writer, items []*dto.CustomerResponse) {
	table := newTable(out, []string{"ID", "Nombre", "Cédula", "Teléfono", "Email", "Registrado"})
	for _, c := range items {
		table.Append([]string{
			strconv.Itoa(c.ID),
			c.Name,
			c.IDDocument,
			c.Phone,
			c.Email,
			c.RegisteredAt.Format(dateLayout),
		})
	}
	table.Render()
}

func renderTransactions(out io.Writer, items []*dto.TransactionResponse) {
	table := newTable(out, []string{"ID", "Tipo", "Producto", "Contraparte", "Cantidad", "P. Unit.", "Total", "Fecha"})
	for _, t := range items {
		table.Append([]string{
			strconv.Itoa(t.ID),
			string(t.Kind),
			strconv.Itoa(t.ProductID),
			strconv.Itoa(t.CounterpartyID),
			strconv.Itoa(t.Quantity),
			t.UnitPrice.StringFixed(2),
			t.Total.StringFixed(2),
			t.Date.Format(dateLayout),
		})
	}
	table.Render()
}
