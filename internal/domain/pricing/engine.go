// Package pricing mantiene consistente el desglose costo/precio de un producto
// cuando el usuario edita uno de sus cinco campos (servicio de dominio, sin I/O).
//
//	CostoBruto  = RoundToTen(CostoNeto * 1.19)
//	PrecioVenta = RoundToTen(CostoNeto * (1 + %Utilidad/100) + UtilidadPesos)
package pricing

import "github.com/shopspring/decimal"

var (
	// TaxFactor IVA Chile 19%.
	TaxFactor = decimal.RequireFromString("1.19")

	ten     = decimal.NewFromInt(10)
	hundred = decimal.NewFromInt(100)
)

// RoundToTen trunca a entero y, si no es múltiplo de 10, sube al siguiente múltiplo de 10.
// Nunca redondea hacia abajo: 21 -> 30, 20 -> 20, -5 -> 0, -15 -> -10.
func RoundToTen(v decimal.Decimal) decimal.Decimal {
	t := v.Truncate(0)
	if t.Mod(ten).IsZero() {
		return t
	}
	return t.Div(ten).Ceil().Mul(ten)
}

// PriceFromNet aplica primero el porcentaje y luego el monto fijo sobre el costo neto.
// Ambos márgenes se suman cuando están presentes; valores <= 0 se ignoran.
func PriceFromNet(net, marginPercent, marginAmount decimal.Decimal) decimal.Decimal {
	p := net
	if marginPercent.IsPositive() {
		p = p.Mul(percentFactor(marginPercent))
	}
	if marginAmount.IsPositive() {
		p = p.Add(marginAmount)
	}
	return RoundToTen(p)
}

// NetFromPrice es la inversa de PriceFromNet: resta el monto fijo y luego divide por el porcentaje.
// El resultado nunca es negativo.
func NetFromPrice(price, marginPercent, marginAmount decimal.Decimal) decimal.Decimal {
	n := price
	if marginAmount.IsPositive() {
		n = n.Sub(marginAmount)
	}
	if marginPercent.IsPositive() {
		n = n.Div(percentFactor(marginPercent))
	}
	if n.IsNegative() {
		n = decimal.Zero
	}
	return RoundToTen(n)
}

// GrossFromNet costo bruto (con IVA) desde el neto.
func GrossFromNet(net decimal.Decimal) decimal.Decimal {
	return RoundToTen(net.Mul(TaxFactor))
}

// NetFromGross costo neto (sin IVA) desde el bruto.
func NetFromGross(gross decimal.Decimal) decimal.Decimal {
	return RoundToTen(gross.Div(TaxFactor))
}

func percentFactor(pct decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(pct.Div(hundred))
}

// Recompute recalcula los campos derivados a partir del campo editado.
//
// Prioridad cuando no se conoce el campo editado (carga inicial): neto > bruto > precio.
// Si solo hay márgenes no hay nada que derivar y el registro vuelve sin cambios.
func Recompute(src EditSource, r Record) Record {
	switch src {
	case SourceNetCost:
		return fromNet(r)
	case SourceGrossCost:
		r.NetCost = NetFromGross(r.GrossCost)
		r.FinalPrice = PriceFromNet(r.NetCost, r.MarginPercent, r.MarginAmount)
		return r
	case SourceFinalPrice:
		return fromPrice(r)
	case SourceMarginPercent, SourceMarginAmount:
		switch {
		case r.NetCost.IsPositive():
			return fromNet(r)
		case r.FinalPrice.IsPositive():
			return fromPrice(r)
		}
		return r
	default:
		switch {
		case r.NetCost.IsPositive():
			return Recompute(SourceNetCost, r)
		case r.GrossCost.IsPositive():
			return Recompute(SourceGrossCost, r)
		case r.FinalPrice.IsPositive():
			return Recompute(SourceFinalPrice, r)
		}
		return r
	}
}

func fromNet(r Record) Record {
	r.GrossCost = GrossFromNet(r.NetCost)
	r.FinalPrice = PriceFromNet(r.NetCost, r.MarginPercent, r.MarginAmount)
	return r
}

func fromPrice(r Record) Record {
	r.NetCost = NetFromPrice(r.FinalPrice, r.MarginPercent, r.MarginAmount)
	r.GrossCost = GrossFromNet(r.NetCost)
	return r
}
