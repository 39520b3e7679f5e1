package ledger

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarTexto devuelve el texto en minúsculas, sin acentos y sin
// espacios en los extremos. Es la forma canónica para comparar nombres
// de alumnos entre colecciones.
func NormalizarTexto(s string) string {
	limpio, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		limpio = s
	}
	return strings.ToLower(strings.TrimSpace(limpio))
}

func mismoTexto(a, b string) bool {
	return a != "" && b != "" && NormalizarTexto(a) == NormalizarTexto(b)
}
