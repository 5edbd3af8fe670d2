// Package slug genera slugs URL-safe a partir de títulos.
// Los títulos del CMS suelen venir en francés; los acentos se pliegan
// a ASCII (é→e, ç→c) antes de filtrar.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make convierte un título en slug: minúsculas, sin acentos,
// solo [a-z0-9] y guiones simples.
func Make(title string) string {
	s, _, err := transform.String(foldAccents, title)
	if err != nil {
		s = title
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastDash := true // evita guion inicial
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Ensure devuelve slug si no está vacío; si no, lo genera desde title.
func Ensure(slugValue, title string) string {
	if slugValue != "" {
		return slugValue
	}
	return Make(title)
}
