package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Nombres de los campos tal como llegan desde el formulario de inventario y en el JSON de producto.
const (
	FieldGrossCost     = "costo_bruto"
	FieldNetCost       = "costo_neto"
	FieldMarginPercent = "porcentaje_utilidad"
	FieldMarginAmount  = "utilidad_pesos"
	FieldFinalPrice    = "precio_venta"
)

// ErrUnknownSource campo editado desconocido.
var ErrUnknownSource = errors.New("pricing: campo editado desconocido")

// Record desglose de costo/precio de un producto. Solo existe mientras se edita el formulario.
type Record struct {
	GrossCost     decimal.Decimal `json:"costo_bruto"`
	NetCost       decimal.Decimal `json:"costo_neto"`
	MarginPercent decimal.Decimal `json:"porcentaje_utilidad"`
	MarginAmount  decimal.Decimal `json:"utilidad_pesos"`
	FinalPrice    decimal.Decimal `json:"precio_venta"`
}

// EditSource campo que el usuario editó por última vez.
type EditSource int

const (
	SourceNone EditSource = iota
	SourceNetCost
	SourceGrossCost
	SourceFinalPrice
	SourceMarginPercent
	SourceMarginAmount
)

var sourceNames = map[EditSource]string{
	SourceNone:          "",
	SourceNetCost:       FieldNetCost,
	SourceGrossCost:     FieldGrossCost,
	SourceFinalPrice:    FieldFinalPrice,
	SourceMarginPercent: FieldMarginPercent,
	SourceMarginAmount:  FieldMarginAmount,
}

func (s EditSource) String() string {
	if name, ok := sourceNames[s]; ok && name != "" {
		return name
	}
	return "ninguno"
}

// ParseEditSource acepta el nombre del campo del formulario. "" equivale a SourceNone.
func ParseEditSource(s string) (EditSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ninguno", "none":
		return SourceNone, nil
	case FieldNetCost, "netcost":
		return SourceNetCost, nil
	case FieldGrossCost, "grosscost":
		return SourceGrossCost, nil
	case FieldFinalPrice, "precio", "finalprice":
		return SourceFinalPrice, nil
	case FieldMarginPercent, "marginpercent":
		return SourceMarginPercent, nil
	case FieldMarginAmount, "marginamount":
		return SourceMarginAmount, nil
	}
	return SourceNone, ErrUnknownSource
}

// Límites de un monto aceptable. Fuera de ellos un valor como "1e900000000" obligaría a
// expandir un entero de cientos de millones de dígitos al redondear.
const (
	maxExponent = 15
	minExponent = -30
)

// MaxAmount mayor valor absoluto que se acepta en cualquiera de los cinco campos.
var MaxAmount = decimal.New(1, maxExponent)

// InRange indica si v es un monto manejable. Revisa el exponente antes de comparar para
// no materializar números enormes.
func InRange(v decimal.Decimal) bool {
	exp := v.Exponent()
	if exp > maxExponent || exp < minExponent {
		return false
	}
	return v.Abs().LessThanOrEqual(MaxAmount)
}

// ParseAmount convierte el valor de un input numérico. Vacío, no numérico o fuera de
// rango (ver InRange) vale 0, como un NaN en el formulario.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !InRange(d) {
		return decimal.Zero
	}
	return d
}

// RecordFromForm lee los cinco campos desde valores de formulario.
func RecordFromForm(form map[string]string) Record {
	price := form[FieldFinalPrice]
	if price == "" {
		price = form["precio"]
	}
	return Record{
		GrossCost:     ParseAmount(form[FieldGrossCost]),
		NetCost:       ParseAmount(form[FieldNetCost]),
		MarginPercent: ParseAmount(form[FieldMarginPercent]),
		MarginAmount:  ParseAmount(form[FieldMarginAmount]),
		FinalPrice:    ParseAmount(price),
	}
}

// Form devuelve los valores como texto para volver a escribirlos en el formulario.
func (r Record) Form() map[string]string {
	return map[string]string{
		FieldGrossCost:     r.GrossCost.String(),
		FieldNetCost:       r.NetCost.String(),
		FieldMarginPercent: r.MarginPercent.String(),
		FieldMarginAmount:  r.MarginAmount.String(),
		FieldFinalPrice:    r.FinalPrice.String(),
	}
}

// Set asigna el valor del campo indicado por src. SourceNone no modifica nada.
func (r *Record) Set(src EditSource, v decimal.Decimal) {
	switch src {
	case SourceNetCost:
		r.NetCost = v
	case SourceGrossCost:
		r.GrossCost = v
	case SourceFinalPrice:
		r.FinalPrice = v
	case SourceMarginPercent:
		r.MarginPercent = v
	case SourceMarginAmount:
		r.MarginAmount = v
	}
}
