// Package textnorm normaliza texto para los sistemas heredados: el BSS guarda
// nombres en mayúsculas y la correspondencia SAP no admite diacríticos.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina las marcas diacríticas y
// recompone (NFC). "García" → "Garcia".
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold elimina los diacríticos de s. Si la transformación falla devuelve el
// texto original sin modificar.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// UpperName normaliza un nombre propio para persistirlo: sin diacríticos, en
// mayúsculas y sin espacios sobrantes.
func UpperName(s string) string {
	return strings.ToUpper(strings.TrimSpace(Fold(s)))
}

// LowerEmail normaliza un email: minúsculas y sin espacios sobrantes.
func LowerEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
