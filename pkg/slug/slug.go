// Package slug genera los identificadores URL-safe de los negocios:
// el nombre normalizado (sin tildes ni caracteres especiales) más un
// sufijo aleatorio corto que garantiza unicidad práctica.
package slug

import (
	"crypto/rand"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxBaseLen = 30
	suffixLen  = 6
	// Alfabeto del sufijo: minúsculas y dígitos, sin ambigüedad de mayúsculas en URLs.
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// New genera un slug a partir del nombre del negocio:
// "Café Luna" -> "cafe-luna-ab12cd".
func New(name string) string {
	base := Normalize(name)
	if base == "" {
		base = "negocio"
	}
	return base + "-" + randomSuffix()
}

// Normalize baja a minúsculas, elimina diacríticos (NFD + descarte de marcas)
// y colapsa todo lo que no sea [a-z0-9] en guiones. Máximo 30 caracteres.
func Normalize(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, strings.ToLower(name))
	if err != nil {
		plain = strings.ToLower(name)
	}

	var sb strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	base := strings.Trim(sb.String(), "-")
	if len(base) > maxBaseLen {
		base = strings.Trim(base[:maxBaseLen], "-")
	}
	return base
}

func randomSuffix() string {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand no falla en la práctica; si falla no hay fuente de
		// aleatoriedad utilizable en el sistema.
		panic("slug: sin fuente de aleatoriedad: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(buf)
}
