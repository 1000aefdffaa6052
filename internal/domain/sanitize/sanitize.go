// Package sanitize valida y sanea la entrada del usuario antes de cualquier
// escritura: nombres de catálogo y cantidades. Todas las funciones son puras;
// un rechazo aquí corta la operación completa sin llegar al repositorio.
package sanitize

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Límites de validación.
const (
	MaxNameLength = 100
	MinQuantity   = 1
	MaxQuantity   = 999999
)

// SanitizeString elimina caracteres de control y los caracteres < y >
// (previene inyección de HTML), recorta espacios y limita el largo.
func SanitizeString(input string, maxLength int) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r < 0x20 || r == 0x7F || r == '<' || r == '>' {
			continue
		}
		b.WriteRune(r)
	}
	sanitized := strings.TrimSpace(b.String())

	if maxLength > 0 {
		runes := []rune(sanitized)
		if len(runes) > maxLength {
			sanitized = string(runes[:maxLength])
		}
	}
	return sanitized
}

// ValidateName valida un nombre de catálogo (tela, operador o motivo).
// Normaliza a NFC, sanea y exige de 1 a 100 caracteres dentro de la lista
// permitida: letras y dígitos Unicode, espacios, guion y guion bajo.
// Devuelve el nombre saneado y ok=false si no pasa.
func ValidateName(name string) (string, bool) {
	sanitized := strings.TrimSpace(SanitizeString(norm.NFC.String(name), MaxNameLength))
	if sanitized == "" {
		return "", false
	}
	for _, r := range sanitized {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) || r == '-' || r == '_' {
			continue
		}
		return "", false
	}
	return sanitized, true
}

// ValidateQuantity parsea una cantidad como entero estricto y verifica el
// rango [1, 999999]. Entrada no numérica o decimal ("12.7") se rechaza, no se
// trunca. Devuelve ok=false ante cualquier rechazo; nunca sustituye valores.
func ValidateQuantity(quantity string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return 0, false
	}
	return ValidateQuantityInt(n)
}

// ValidateQuantityInt verifica el rango de una cantidad ya numérica.
func ValidateQuantityInt(n int) (int, bool) {
	if n < MinQuantity || n > MaxQuantity {
		return 0, false
	}
	return n, true
}
