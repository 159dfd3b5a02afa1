// Package rut valida y formatea el RUT chileno (Rol Único Tributario).
//
// El formateo es permisivo: nunca falla y acepta la entrada mientras se escribe.
// La validación es estricta y es el único punto donde un RUT se rechaza.
package rut

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// MaxBodyLen largo máximo del cuerpo, sin dígito verificador.
	MaxBodyLen  = 8
	maxCleanLen = MaxBodyLen + 1
)

var (
	// ErrInvalid se usa como mensaje visible al usuario en formularios.
	ErrInvalid = errors.New("El RUT ingresado no es válido")
	// ErrEmpty indica que no se ingresó RUT (cuerpo vacío o solo ceros).
	ErrEmpty = errors.New("rut: no se ingresó RUT")
)

// Clean elimina todo lo que no sea dígito o K, pasa a mayúsculas y
// trunca a 9 caracteres (cuerpo de 8 dígitos + dígito verificador).
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(maxCleanLen)
	n := 0
	for _, r := range raw {
		if n == maxCleanLen {
			break
		}
		switch {
		case r >= '0' && r <= '9', r == 'K':
			b.WriteRune(r)
		case r == 'k':
			b.WriteRune('K')
		default:
			continue
		}
		n++
	}
	return b.String()
}

// CheckDigit calcula el dígito verificador (módulo 11) de un cuerpo numérico.
// Los dígitos se recorren de derecha a izquierda con pesos 2..7 cíclicos.
// Un cuerpo sin dígitos devuelve "".
func CheckDigit(body string) string {
	sum, weight, seen := 0, 2, false
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			continue
		}
		seen = true
		sum += int(c-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}
	if !seen {
		return ""
	}
	switch r := 11 - sum%11; r {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(r)
	}
}

// Format devuelve el RUT para mostrar (12.345.678-5) a partir de lo que el usuario escribe.
// El último carácter se toma como dígito verificador tal cual, sin recalcularlo,
// para no corregir al usuario mientras todavía está escribiendo.
func Format(raw string) string {
	clean := Clean(raw)
	if len(clean) <= 1 {
		return clean
	}
	body, dv := split(clean)
	if len(body) > MaxBodyLen {
		body = body[:MaxBodyLen]
	}
	return group(body) + "-" + dv
}

// FormatDigits formatea un cuerpo guardado solo con dígitos (p. ej. el campo rut del backend),
// calculando el dígito verificador correcto.
func FormatDigits(digits string) string {
	body := onlyDigits(digits)
	if body == "" {
		return ""
	}
	return group(body) + "-" + CheckDigit(body)
}

// IsValid indica si raw es un RUT con dígito verificador correcto.
func IsValid(raw string) bool {
	clean := Clean(raw)
	if len(clean) < 2 {
		return false
	}
	body, dv := split(clean)
	if !isNumeric(body) {
		return false
	}
	return strings.EqualFold(CheckDigit(body), dv)
}

// Body devuelve solo los dígitos del cuerpo, sin ceros a la izquierda, tal como
// lo espera el backend en el campo rut. "" si no hay cuerpo.
func Body(raw string) string {
	clean := Clean(raw)
	if len(clean) < 2 {
		return ""
	}
	body, _ := split(clean)
	return strings.TrimLeft(onlyDigits(body), "0")
}

// IsEmpty indica que el valor equivale a "sin RUT": cuerpo vacío o solo ceros.
func IsEmpty(raw string) bool {
	return Body(raw) == ""
}

func split(clean string) (body, dv string) {
	return clean[:len(clean)-1], clean[len(clean)-1:]
}

// group inserta puntos como separador de miles desde la derecha.
func group(body string) string {
	if len(body) <= 3 {
		return body
	}
	var b strings.Builder
	lead := len(body) % 3
	if lead > 0 {
		b.WriteString(body[:lead])
	}
	for i := lead; i < len(body); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(body[i : i+3])
	}
	return b.String()
}

func onlyDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
