package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Las funciones de abajo los
// envuelven con el campo/id/relación en conflicto; comparar con errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicateKey      = errors.New("valor duplicado")
	ErrReferenceNotFound = errors.New("referencia inexistente")
	ErrReferenceInUse    = errors.New("registro referenciado por otros")
	ErrInvalidValue      = errors.New("valor inválido")
	ErrCancelled         = errors.New("operación cancelada")
)

// Duplicate construye un ErrDuplicateKey nombrando el campo y el valor que ya
// existe (código de producto, RIF de proveedor, cédula de cliente).
func Duplicate(field, value string) error {
	return fmt.Errorf("%w: %s %q ya está registrado", ErrDuplicateKey, field, value)
}

// MissingReference construye un ErrReferenceNotFound nombrando la entidad y el
// id inexistente al que apunta una clave foránea.
func MissingReference(kind string, id int) error {
	return fmt.Errorf("%w: %s con id %d no existe", ErrReferenceNotFound, kind, id)
}

// InUse construye un ErrReferenceInUse nombrando la entidad dependiente que
// impide (o advierte sobre) la eliminación, y cuántos registros dependen.
func InUse(kind string, count int) error {
	return fmt.Errorf("%w: %d %s asociado(s)", ErrReferenceInUse, count, kind)
}

// Invalid construye un ErrInvalidValue nombrando el campo y la regla violada.
func Invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidValue, field, reason)
}
