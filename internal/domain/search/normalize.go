// Package search implementa la normalización de texto para búsquedas
// parciales: sin mayúsculas y sin tildes, pensado para datos en español
// ("Azúcar" debe coincidir con el filtro "azucar").
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks descompone (NFD), elimina las marcas diacríticas y recompone.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve s en minúsculas y sin diacríticos.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Entrada no UTF-8 válida: degradar a solo minúsculas.
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Contains indica si field contiene filter, ignorando mayúsculas y tildes.
// Un filtro vacío coincide con todo.
func Contains(field, filter string) bool {
	return strings.Contains(Normalize(field), Normalize(filter))
}
