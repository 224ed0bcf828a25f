// Package cli implementa la capa de presentación: menú de texto, captura de
// campos y render de tablas. No contiene reglas de negocio; toda validación
// de fondo vive en los casos de uso, aquí solo se parsea y se confirma.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario/internal/domain"
)

// isCancel tokens de cancelación aceptados entre campos: "0" o "cancelar".
func isCancel(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "0" || s == "cancelar"
}

// prompter lectura de campos desde la entrada del usuario. Los métodos de
// campo devuelven domain.ErrCancelled si el usuario escribe un token de
// cancelación; los de menú no interpretan cancelación (ahí 0 es "volver").
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// raw imprime la etiqueta y lee una línea sin interpretar cancelación.
func (p *prompter) raw(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// option lee una opción numérica de menú (reintenta hasta que sea un número).
func (p *prompter) option(label string) (int, error) {
	for {
		raw, err := p.raw(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Fprintln(p.out, "Opción inválida.")
			continue
		}
		return n, nil
	}
}

// text lee un campo de texto obligatorio; cancela con "0"/"cancelar".
func (p *prompter) text(label string) (string, error) {
	raw, err := p.raw(label)
	if err != nil {
		return "", err
	}
	if isCancel(raw) {
		return "", domain.ErrCancelled
	}
	return raw, nil
}

// number lee un campo entero; cancela con "0"/"cancelar".
func (p *prompter) number(label string) (int, error) {
	for {
		raw, err := p.text(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Fprintln(p.out, "Valor numérico inválido, intente de nuevo.")
			continue
		}
		return n, nil
	}
}

// signedNumber lee un entero sin tratar "0" como cancelación: cero es un
// valor válido tanto para un stock como para un ajuste. Solo "cancelar"
// cancela.
func (p *prompter) signedNumber(label string) (int, error) {
	for {
		raw, err := p.raw(label)
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(raw, "cancelar") {
			return 0, domain.ErrCancelled
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Fprintln(p.out, "Valor numérico inválido, intente de nuevo.")
			continue
		}
		return n, nil
	}
}

// money lee un monto decimal; cancela con "0"/"cancelar".
func (p *prompter) money(label string) (decimal.Decimal, error) {
	for {
		raw, err := p.text(label)
		if err != nil {
			return decimal.Zero, err
		}
		d, convErr := decimal.NewFromString(raw)
		if convErr != nil {
			fmt.Fprintln(p.out, "Monto inválido, intente de nuevo.")
			continue
		}
		return d, nil
	}
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// confirm pregunta S/N; cualquier respuesta que no empiece por S es no.
func (p *prompter) confirm(label string) (bool, error) {
	raw, err := p.raw(label + " (S/N)")
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToUpper(raw), "S"), nil
}
