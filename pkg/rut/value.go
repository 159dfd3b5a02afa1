package rut

import (
	"strconv"
	"strings"
)

// RUT es un valor validado e inmutable. Cualquier edición se vuelve a construir con Parse.
type RUT struct {
	body string
	dv   string
}

// Parse valida raw y construye el RUT. Devuelve ErrEmpty si el cuerpo es vacío o cero
// y ErrInvalid si el dígito verificador no corresponde.
func Parse(raw string) (RUT, error) {
	if IsEmpty(raw) {
		return RUT{}, ErrEmpty
	}
	if !IsValid(raw) {
		return RUT{}, ErrInvalid
	}
	body := Body(raw)
	return RUT{body: body, dv: CheckDigit(body)}, nil
}

// FromNumber reconstruye el RUT desde el cuerpo numérico guardado en la base de datos.
func FromNumber(n int64) (RUT, error) {
	if n <= 0 {
		return RUT{}, ErrEmpty
	}
	body := strconv.FormatInt(n, 10)
	if len(body) > MaxBodyLen {
		return RUT{}, ErrInvalid
	}
	return RUT{body: body, dv: CheckDigit(body)}, nil
}

// Body cuerpo sin puntos ni dígito verificador.
func (r RUT) Body() string { return r.body }

// DV dígito verificador (0-9 o K).
func (r RUT) DV() string { return r.dv }

// Number cuerpo como entero, que es como se persiste.
func (r RUT) Number() int64 {
	n, _ := strconv.ParseInt(r.body, 10, 64)
	return n
}

// IsZero indica si es el valor cero (sin RUT).
func (r RUT) IsZero() bool { return r.body == "" }

// String formato de despliegue: 12.345.678-5.
func (r RUT) String() string {
	if r.IsZero() {
		return ""
	}
	return group(r.body) + "-" + r.dv
}

// Compact formato sin puntos: 12345678-5.
func (r RUT) Compact() string {
	if r.IsZero() {
		return ""
	}
	return r.body + "-" + strings.ToUpper(r.dv)
}
