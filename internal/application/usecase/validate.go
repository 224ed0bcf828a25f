package usecase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario/internal/domain"
)

// Límites de longitud heredados del diseño de registros de ancho fijo; hoy
// son reglas de validación, no límites de almacenamiento.
const (
	maxCodeLen        = 19
	maxNameLen        = 100
	maxDescriptionLen = 200
	maxTaxIDLen       = 20
	maxIDDocumentLen  = 20
	maxPhoneLen       = 20
	maxEmailLen       = 100
	maxAddressLen     = 200
)

// requireText valida presencia y longitud máxima de un campo de texto.
func requireText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return domain.Invalid(field, "no puede estar vacío")
	}
	if utf8.RuneCountInString(value) > max {
		return domain.Invalid(field, fmt.Sprintf("supera el máximo de %d caracteres", max))
	}
	return nil
}

// optionalText valida solo la longitud; el campo puede quedar vacío.
func optionalText(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return domain.Invalid(field, fmt.Sprintf("supera el máximo de %d caracteres", max))
	}
	return nil
}

// validateCode código de producto: obligatorio, ≤19 caracteres, sin espacios.
func validateCode(code string) error {
	if err := requireText("código", code, maxCodeLen); err != nil {
		return err
	}
	if strings.ContainsFunc(code, unicode.IsSpace) {
		return domain.Invalid("código", "no puede contener espacios en blanco")
	}
	return nil
}

// validateEmail regla mínima: debe contener @ con un punto después.
func validateEmail(email string) error {
	if err := requireText("email", email, maxEmailLen); err != nil {
		return err
	}
	at := strings.Index(email, "@")
	if at < 0 || !strings.Contains(email[at+1:], ".") {
		return domain.Invalid("email", "debe contener @ seguido de un dominio con punto")
	}
	return nil
}

// validatePrice precio unitario estrictamente positivo.
func validatePrice(field string, price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return domain.Invalid(field, "debe ser mayor que cero")
	}
	return nil
}

// validateStock el stock nunca puede ser negativo.
func validateStock(stock int) error {
	if stock < 0 {
		return domain.Invalid("stock", "no puede ser negativo")
	}
	return nil
}
