package main

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const sampleCSV = `sku;nombre;categoria;rut_proveedor;proveedor;costo_bruto;costo_neto;porcentaje_utilidad;utilidad_pesos;precio_venta;stock
T-001;Martillo Ñandú;Herramientas;76.086.428-5;Ferretería Sur;;1.000;20;;;5
E-010;Cable 2,5mm;Electricidad;;;$2.380;;;;;
X-1;Malo;;12.345.678-4;Prov;;;;;;
T-001;dup;;;;;;;;;
;sin sku;;;;;;;;;
P-5;Pintura;herramientas;76086428-5;Ferretería Sur;;;20;500;1.700;1.200
`

func latin1(t *testing.T, s string) *strings.Reader {
	t.Helper()
	enc, err := charmap.ISO8859_1.NewEncoder().String(s)
	require.NoError(t, err)
	return strings.NewReader(enc)
}

func TestReadCatalog(t *testing.T) {
	cat, rowErrs, err := readCatalog(latin1(t, sampleCSV))
	require.NoError(t, err)

	require.Len(t, cat.products, 3)
	assert.Equal(t, "Martillo Ñandú", cat.products[0].name)
	assert.Equal(t, []string{"Electricidad", "Herramientas"}, cat.categories)
	require.Len(t, cat.providers, 1)
	assert.Equal(t, "Ferretería Sur", cat.providers[0].name)
	assert.Equal(t, "76.086.428-5", cat.providers[0].rut.String())

	require.Len(t, rowErrs, 3)
	assert.Equal(t, []int{4, 5, 6}, []int{rowErrs[0].line, rowErrs[1].line, rowErrs[2].line})
	assert.Contains(t, rowErrs[1].Error(), "repetido")
}

func TestReadCatalog_DerivaPrecios(t *testing.T) {
	cat, _, err := readCatalog(latin1(t, sampleCSV))
	require.NoError(t, err)

	martillo := cat.products[0].pricing
	assert.True(t, martillo.GrossCost.Equal(decimal.NewFromInt(1190)))
	assert.True(t, martillo.FinalPrice.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, 5, cat.products[0].stock)

	cable := cat.products[1].pricing
	assert.True(t, cable.NetCost.Equal(decimal.NewFromInt(2000)))

	pintura := cat.products[2]
	assert.True(t, pintura.pricing.NetCost.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 1200, pintura.stock)
}

func TestReadCatalog_SinColumnasObligatorias(t *testing.T) {
	_, _, err := readCatalog(latin1(t, "codigo;descripcion\nA;B\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sku")
}

func TestParseCLAmount(t *testing.T) {
	cases := map[string]string{
		"":        "0",
		"$1.190":  "1190",
		"1.190,5": "1190.5",
		"20":      "20",
		" 2 380 ": "2380",
	}
	for in, want := range cases {
		got, err := parseCLAmount(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%q -> %s", in, got)
	}

	_, err := parseCLAmount("abc")
	assert.Error(t, err)
	_, err = parseCLAmount("-5")
	assert.Error(t, err)
}

func TestWriteSQL(t *testing.T) {
	cat, _, err := readCatalog(latin1(t, sampleCSV))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, writeSQL(&b, cat))
	sql := b.String()

	assert.True(t, strings.HasPrefix(sql, "-- Catálogo inicial"))
	assert.Equal(t, 2, strings.Count(sql, "INSERT INTO categories"))
	assert.Equal(t, 1, strings.Count(sql, "INSERT INTO providers"))
	assert.Equal(t, 3, strings.Count(sql, "INSERT INTO products"))
	assert.Contains(t, sql, "-- 76.086.428-5")
	assert.Contains(t, sql, "(SELECT id FROM providers WHERE rut = 76086428)")
	assert.Contains(t, sql, "'Martillo Ñandú'")
	assert.Contains(t, sql, "1190, 1000, 20, 0, 1200)")
	assert.True(t, strings.HasSuffix(sql, "COMMIT;\n"))
}

func TestEscapeSQL(t *testing.T) {
	assert.Equal(t, "Llave ''inglesa''", escapeSQL("Llave 'inglesa'"))
}
