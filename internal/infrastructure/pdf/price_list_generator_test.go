package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
)

func TestFormatCLP(t *testing.T) {
	cases := map[string]string{
		"0":       "$0",
		"990":     "$990",
		"1190":    "$1.190",
		"1000000": "$1.000.000",
		"-2500":   "-$2.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatCLP(decimal.RequireFromString(in)), in)
	}
}

func TestGeneratePriceList(t *testing.T) {
	g := NewPriceListGenerator("Ferretería Central")
	sections := []usecase.PriceListSection{
		{Category: "Herramientas", Items: []usecase.PriceListItem{
			{SKU: "MART-01", Name: "Martillo", Stock: 4, Price: decimal.NewFromInt(1200)},
			{SKU: "SERR-01", Name: "Serrucho", Stock: 1, Price: decimal.NewFromInt(7990)},
		}},
		{Category: "Sin categoría", Items: []usecase.PriceListItem{
			{SKU: "X", Name: "Varios", Price: decimal.NewFromInt(10)},
		}},
	}
	doc, err := g.GeneratePriceList(context.Background(), "Lista de precios", time.Now(), sections)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGeneratePriceList_SinProductos(t *testing.T) {
	doc, err := NewPriceListGenerator("x").GeneratePriceList(context.Background(), "Vacía", time.Now(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
