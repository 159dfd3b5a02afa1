// Package phone normaliza teléfonos chilenos al formato +56XXXXXXXXX.
package phone

import (
	"errors"
	"strings"
)

// ErrInvalid teléfono que no se puede normalizar.
var ErrInvalid = errors.New("phone: número inválido")

// Normalize acepta "9 1234 5678", "+56 9 1234 5678", "56912345678" o "12345678"
// (móvil sin el 9) y devuelve "+56912345678". Los fijos de 9 dígitos (2XXXXXXXX) también se aceptan.
func Normalize(raw string) (string, error) {
	digits := onlyDigits(raw)
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "56"):
		digits = digits[2:]
	case len(digits) == 8:
		digits = "9" + digits
	}
	if len(digits) != 9 || digits[0] == '0' {
		return "", ErrInvalid
	}
	return "+56" + digits, nil
}

// Display formato legible: +56 9 1234 5678.
func Display(normalized string) string {
	d := onlyDigits(normalized)
	if len(d) != 11 {
		return normalized
	}
	return "+" + d[:2] + " " + d[2:3] + " " + d[3:7] + " " + d[7:]
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
