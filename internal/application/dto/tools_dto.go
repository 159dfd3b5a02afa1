package dto

import "github.com/shopspring/decimal"

// RUTRequest texto libre escrito por el usuario.
type RUTRequest struct {
	Value string `json:"value"`
}

// RUTResponse resultado de validar/formatear un RUT.
type RUTResponse struct {
	Clean      string `json:"clean"`
	Display    string `json:"display"`
	Body       string `json:"body"`
	CheckDigit string `json:"check_digit"`
	Valid      bool   `json:"valid"`
	Message    string `json:"message,omitempty"`
}

// RecomputeRequest valores del formulario de precios y el campo editado.
// Los montos pueden llegar como texto o número; vacío o inválido vale 0.
type RecomputeRequest struct {
	Edited        string    `json:"edited"`
	GrossCost     FormValue `json:"costo_bruto"`
	NetCost       FormValue `json:"costo_neto"`
	MarginPercent FormValue `json:"porcentaje_utilidad"`
	MarginAmount  FormValue `json:"utilidad_pesos"`
	Price         FormValue `json:"precio_venta"`
	PriceAlias    FormValue `json:"precio"`
}

// Form valores como mapa campo -> texto.
func (r RecomputeRequest) Form() map[string]string {
	return map[string]string{
		"costo_bruto":         string(r.GrossCost),
		"costo_neto":          string(r.NetCost),
		"porcentaje_utilidad": string(r.MarginPercent),
		"utilidad_pesos":      string(r.MarginAmount),
		"precio_venta":        string(r.Price),
		"precio":              string(r.PriceAlias),
	}
}

// RecomputeResponse registro recalculado; los montos se serializan como texto.
type RecomputeResponse struct {
	Edited        string          `json:"edited"`
	GrossCost     decimal.Decimal `json:"costo_bruto"`
	NetCost       decimal.Decimal `json:"costo_neto"`
	MarginPercent decimal.Decimal `json:"porcentaje_utilidad"`
	MarginAmount  decimal.Decimal `json:"utilidad_pesos"`
	Price         decimal.Decimal `json:"precio_venta"`
}
