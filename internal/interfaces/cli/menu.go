package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/tu-usuario/inventario/internal/application/usecase"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/pkg/logger"
)

// Config identidad de la tienda para el encabezado del menú.
type Config struct {
	StoreName  string
	StoreTaxID string
}

// Menu capa de presentación del inventario: un menú de texto secuencial que
// traduce entradas del usuario a llamadas de casos de uso y muestra los
// resultados. El menú nunca muta el almacén directamente.
type Menu struct {
	cfg          Config
	products     *usecase.ProductUseCase
	suppliers    *usecase.SupplierUseCase
	customers    *usecase.CustomerUseCase
	transactions *usecase.TransactionUseCase
	p            *prompter
	out          io.Writer
	log          *logger.Logger
}

// New construye el menú sobre los casos de uso y los streams de E/S.
func New(
	cfg Config,
	products *usecase.ProductUseCase,
	suppliers *usecase.SupplierUseCase,
	customers *usecase.CustomerUseCase,
	transactions *usecase.TransactionUseCase,
	in io.Reader,
	out io.Writer,
	log *logger.Logger,
) *Menu {
	return &Menu{
		cfg:          cfg,
		products:     products,
		suppliers:    suppliers,
		customers:    customers,
		transactions: transactions,
		p:            newPrompter(in, out),
		out:          out,
		log:          log,
	}
}

// Run ejecuta el bucle principal hasta que el usuario salga o se agote la
// entrada. Solo errores de E/S terminan el bucle con error.
func (m *Menu) Run() error {
	m.log.Info().Str("tienda", m.cfg.StoreName).Msg("sesión iniciada")
	for {
		fmt.Fprintf(m.out, "\n======== %s ========\n", m.cfg.StoreName)
		if m.cfg.StoreTaxID != "" {
			fmt.Fprintf(m.out, "RIF: %s\n", m.cfg.StoreTaxID)
		}
		fmt.Fprintln(m.out, "1. Productos")
		fmt.Fprintln(m.out, "2. Proveedores")
		fmt.Fprintln(m.out, "3. Clientes")
		fmt.Fprintln(m.out, "4. Transacciones")
		fmt.Fprintln(m.out, "0. Salir")

		opt, err := m.p.option("Seleccione una opción")
		if err != nil {
			return m.finish(err)
		}
		switch opt {
		case 1:
			err = m.productMenu()
		case 2:
			err = m.supplierMenu()
		case 3:
			err = m.customerMenu()
		case 4:
			err = m.transactionMenu()
		case 0:
			fmt.Fprintln(m.out, "Hasta luego.")
			m.log.Info().Msg("sesión terminada")
			return nil
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}
		if err != nil {
			return m.finish(err)
		}
	}
}

// finish normaliza el cierre por fin de entrada (pipe cerrado, Ctrl-D).
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		m.log.Info().Msg("entrada agotada, sesión terminada")
		return nil
	}
	return err
}

// handle convierte una cancelación de campo en un aviso y corta el flujo en
// curso sin error; cualquier otro error (E/S) se propaga.
func (m *Menu) handle(err error) error {
	if errors.Is(err, domain.ErrCancelled) {
		fmt.Fprintln(m.out, "Operación cancelada.")
		return nil
	}
	return err
}

// report muestra al usuario una regla violada, nombrando campo/id/relación,
// y la deja en el log. No termina la sesión: el usuario puede reintentar.
func (m *Menu) report(err error) {
	fmt.Fprintf(m.out, "ERROR: %v\n", err)
	m.log.Warn().Err(err).Msg("operación rechazada")
}

// supplierName nombre del proveedor para mostrar en tablas; "Desconocido"
// si la referencia quedó huérfana.
func (m *Menu) supplierName(id int) string {
	s, err := m.suppliers.GetByID(id)
	if err != nil {
		return "Desconocido"
	}
	return s.Name
}
