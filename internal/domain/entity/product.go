package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ferreteria-api/internal/domain/pricing"
)

// Product producto del catálogo con su desglose de costo y precio.
// Los cinco campos de precio se mantienen consistentes con pricing.Recompute.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Description   string
	CategoryID    string // vacío si no tiene
	ProviderID    string // vacío si no tiene
	Stock         int
	GrossCost     decimal.Decimal // costo con IVA
	NetCost       decimal.Decimal // costo sin IVA
	MarginPercent decimal.Decimal
	MarginAmount  decimal.Decimal
	Price         decimal.Decimal // precio de venta
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Pricing devuelve el desglose actual.
func (p *Product) Pricing() pricing.Record {
	return pricing.Record{
		GrossCost:     p.GrossCost,
		NetCost:       p.NetCost,
		MarginPercent: p.MarginPercent,
		MarginAmount:  p.MarginAmount,
		FinalPrice:    p.Price,
	}
}

// SetPricing copia el desglose al producto.
func (p *Product) SetPricing(r pricing.Record) {
	p.GrossCost = r.GrossCost
	p.NetCost = r.NetCost
	p.MarginPercent = r.MarginPercent
	p.MarginAmount = r.MarginAmount
	p.Price = r.FinalPrice
}
