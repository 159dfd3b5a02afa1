package entity

import (
	"time"

	"github.com/jhoicas/ferreteria-api/pkg/rut"
)

// Provider proveedor de la ferretería. RUT guarda solo el cuerpo numérico;
// el dígito verificador se recalcula al mostrarlo.
type Provider struct {
	ID          string
	RUT         int64
	Name        string
	ContactName string
	Email       string
	Phone       string // +569XXXXXXXX
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayRUT RUT con puntos y dígito verificador, "" si no tiene.
func (p *Provider) DisplayRUT() string {
	r, err := rut.FromNumber(p.RUT)
	if err != nil {
		return ""
	}
	return r.String()
}
