package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Edited indica qué campo de precio
// editó el usuario; el resto se deriva con el motor de precios antes de guardar.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"max=2000"`
	CategoryID    string          `json:"category_id" validate:"omitempty,uuid"`
	ProviderID    string          `json:"provider_id" validate:"omitempty,uuid"`
	Stock         int             `json:"stock" validate:"min=0"`
	Edited        string          `json:"edited" validate:"omitempty,edit_source"`
	GrossCost     decimal.Decimal `json:"costo_bruto" validate:"min=0,max=1000000000000000"`
	NetCost       decimal.Decimal `json:"costo_neto" validate:"min=0,max=1000000000000000"`
	MarginPercent decimal.Decimal `json:"porcentaje_utilidad" validate:"min=0,max=1000000000000000"`
	MarginAmount  decimal.Decimal `json:"utilidad_pesos" validate:"min=0,max=1000000000000000"`
	Price         decimal.Decimal `json:"precio_venta" validate:"min=0,max=1000000000000000"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
	CategoryID    *string          `json:"category_id" validate:"omitempty,uuid"`
	ProviderID    *string          `json:"provider_id" validate:"omitempty,uuid"`
	Stock         *int             `json:"stock" validate:"omitempty,min=0"`
	Active        *bool            `json:"active"`
	Edited        string           `json:"edited" validate:"omitempty,edit_source"`
	GrossCost     *decimal.Decimal `json:"costo_bruto" validate:"omitempty,min=0,max=1000000000000000"`
	NetCost       *decimal.Decimal `json:"costo_neto" validate:"omitempty,min=0,max=1000000000000000"`
	MarginPercent *decimal.Decimal `json:"porcentaje_utilidad" validate:"omitempty,min=0,max=1000000000000000"`
	MarginAmount  *decimal.Decimal `json:"utilidad_pesos" validate:"omitempty,min=0,max=1000000000000000"`
	Price         *decimal.Decimal `json:"precio_venta" validate:"omitempty,min=0,max=1000000000000000"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id,omitempty"`
	ProviderID    string          `json:"provider_id,omitempty"`
	Stock         int             `json:"stock"`
	GrossCost     decimal.Decimal `json:"costo_bruto"`
	NetCost       decimal.Decimal `json:"costo_neto"`
	MarginPercent decimal.Decimal `json:"porcentaje_utilidad"`
	MarginAmount  decimal.Decimal `json:"utilidad_pesos"`
	Price         decimal.Decimal `json:"precio_venta"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductListQuery filtros del catálogo público.
type ProductListQuery struct {
	PageRequest
	CategoryID string `query:"category_id"`
	Search     string `query:"q"`
}
