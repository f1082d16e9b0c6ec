package movements

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone (NFD), elimina las marcas diacríticas y recompone.
// Así "Jabón" y "jabon" coinciden en la búsqueda libre.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeSearch normaliza un texto para comparación: minúsculas, sin acentos
// y sin espacios sobrantes.
func normalizeSearch(s string) string {
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
