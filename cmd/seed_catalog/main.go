// seed_catalog genera un script SQL con el catálogo inicial (categorías, proveedores y
// productos) a partir de la planilla exportada como CSV (Latin-1, separado por ";").
//
// Uso: go run ./cmd/seed_catalog [catalogo.csv] [salida.sql]
// Por defecto lee catalogo.csv del directorio actual y escribe seeds/catalogo.sql en el módulo.
//
// Columnas (con encabezado):
//
//	sku;nombre;categoria;rut_proveedor;proveedor;costo_bruto;costo_neto;porcentaje_utilidad;utilidad_pesos;precio_venta;stock
//
// Los montos usan formato chileno (1.190 o 1.190,50). Los precios se derivan con el
// mismo motor que la API: neto > bruto > precio.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/ferreteria-api/internal/domain/pricing"
	"github.com/jhoicas/ferreteria-api/pkg/rut"
)

var columns = []string{
	"sku", "nombre", "categoria", "rut_proveedor", "proveedor",
	pricing.FieldGrossCost, pricing.FieldNetCost, pricing.FieldMarginPercent,
	pricing.FieldMarginAmount, pricing.FieldFinalPrice, "stock",
}

type providerRow struct {
	rut  rut.RUT
	name string
}

type productRow struct {
	sku      string
	name     string
	category string
	provider *providerRow
	pricing  pricing.Record
	stock    int
}

type catalog struct {
	products   []productRow
	categories []string
	providers  []providerRow
}

// rowError error de una fila; line es la línea del archivo (el encabezado es la 1).
type rowError struct {
	line int
	err  error
}

func (e rowError) Error() string { return fmt.Sprintf("línea %d: %v", e.line, e.err) }

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "seeds", "catalogo.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cat, rowErrs, err := readCatalog(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	for _, e := range rowErrs {
		fmt.Fprintf(os.Stderr, "Omitida %v\n", e)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d categorías, %d proveedores, %d productos (%d filas omitidas)\n",
		outPath, len(cat.categories), len(cat.providers), len(cat.products), len(rowErrs))
}

// readCatalog decodifica el CSV Latin-1. Las filas inválidas se devuelven aparte y no
// detienen la lectura; err solo indica que el archivo no se pudo leer.
func readCatalog(r io.Reader) (*catalog, []rowError, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("encabezado: %w", err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, nil, err
	}

	cat := &catalog{}
	var rowErrs []rowError
	seenSKU := map[string]bool{}
	seenCat := map[string]bool{}
	seenProv := map[int64]bool{}
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if strings.Join(rec, "") == "" {
			continue
		}

		row, err := parseRow(get)
		if err != nil {
			rowErrs = append(rowErrs, rowError{line: line, err: err})
			continue
		}
		key := strings.ToUpper(row.sku)
		if seenSKU[key] {
			rowErrs = append(rowErrs, rowError{line: line, err: fmt.Errorf("sku %s repetido", row.sku)})
			continue
		}
		seenSKU[key] = true

		if row.category != "" && !seenCat[strings.ToLower(row.category)] {
			seenCat[strings.ToLower(row.category)] = true
			cat.categories = append(cat.categories, row.category)
		}
		if row.provider != nil && !seenProv[row.provider.rut.Number()] {
			seenProv[row.provider.rut.Number()] = true
			cat.providers = append(cat.providers, *row.provider)
		}
		cat.products = append(cat.products, row)
	}

	sort.Strings(cat.categories)
	sort.Slice(cat.providers, func(i, j int) bool { return cat.providers[i].rut.Number() < cat.providers[j].rut.Number() })
	return cat, rowErrs, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"sku", "nombre"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}
	// columnas opcionales ausentes apuntan fuera de la fila y se leen vacías
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			idx[col] = len(header) + 1
		}
	}
	return idx, nil
}

func parseRow(get func(string) string) (productRow, error) {
	row := productRow{
		sku:      get("sku"),
		name:     get("nombre"),
		category: get("categoria"),
	}
	if row.sku == "" || row.name == "" {
		return row, errors.New("sku y nombre son obligatorios")
	}

	if raw := get("rut_proveedor"); !rut.IsEmpty(raw) {
		r, err := rut.Parse(raw)
		if err != nil {
			return row, fmt.Errorf("rut de proveedor %q: %w", raw, err)
		}
		name := get("proveedor")
		if name == "" {
			return row, fmt.Errorf("proveedor %s sin nombre", r.String())
		}
		row.provider = &providerRow{rut: r, name: name}
	}

	var rec pricing.Record
	fields := []struct {
		col string
		dst *decimal.Decimal
	}{
		{pricing.FieldGrossCost, &rec.GrossCost},
		{pricing.FieldNetCost, &rec.NetCost},
		{pricing.FieldMarginPercent, &rec.MarginPercent},
		{pricing.FieldMarginAmount, &rec.MarginAmount},
		{pricing.FieldFinalPrice, &rec.FinalPrice},
	}
	for _, f := range fields {
		v, err := parseCLAmount(get(f.col))
		if err != nil {
			return row, fmt.Errorf("%s: %w", f.col, err)
		}
		*f.dst = v
	}
	row.pricing = pricing.Recompute(pricing.SourceNone, rec)

	if s := get("stock"); s != "" {
		n, err := strconv.Atoi(strings.ReplaceAll(s, ".", ""))
		if err != nil || n < 0 {
			return row, fmt.Errorf("stock %q inválido", s)
		}
		row.stock = n
	}
	return row, nil
}

// parseCLAmount lee montos con punto de miles y coma decimal: "$1.190", "1.190,5", "20".
func parseCLAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto %q inválido", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("monto %s negativo", d)
	}
	return d, nil
}

func writeSQL(w io.Writer, cat *catalog) error {
	var b strings.Builder
	b.WriteString("-- Catálogo inicial de la ferretería\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")
	b.WriteString("BEGIN;\n\n")

	if len(cat.categories) > 0 {
		b.WriteString("-- 1. Categorías\n")
		for _, c := range cat.categories {
			fmt.Fprintf(&b, "INSERT INTO categories (id, name) VALUES ('%s', '%s')\n", uuid.NewString(), escapeSQL(c))
			b.WriteString("ON CONFLICT ((lower(name))) DO NOTHING;\n")
		}
		b.WriteString("\n")
	}

	if len(cat.providers) > 0 {
		b.WriteString("-- 2. Proveedores (rut sin dígito verificador)\n")
		for _, p := range cat.providers {
			fmt.Fprintf(&b, "-- %s\n", p.rut.String())
			fmt.Fprintf(&b, "INSERT INTO providers (id, rut, name) VALUES ('%s', %d, '%s')\n",
				uuid.NewString(), p.rut.Number(), escapeSQL(p.name))
			b.WriteString("ON CONFLICT (rut) DO UPDATE SET name = EXCLUDED.name;\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("-- 3. Productos\n")
	for _, p := range cat.products {
		category := "NULL"
		if p.category != "" {
			category = fmt.Sprintf("(SELECT id FROM categories WHERE lower(name) = lower('%s'))", escapeSQL(p.category))
		}
		provider := "NULL"
		if p.provider != nil {
			provider = fmt.Sprintf("(SELECT id FROM providers WHERE rut = %d)", p.provider.rut.Number())
		}
		r := p.pricing
		b.WriteString("INSERT INTO products (id, sku, name, category_id, provider_id, stock, " +
			"costo_bruto, costo_neto, porcentaje_utilidad, utilidad_pesos, precio_venta)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', %s, %s, %d, %s, %s, %s, %s, %s)\n",
			uuid.NewString(), escapeSQL(p.sku), escapeSQL(p.name), category, provider, p.stock,
			r.GrossCost, r.NetCost, r.MarginPercent, r.MarginAmount, r.FinalPrice)
		b.WriteString("ON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name, stock = EXCLUDED.stock, " +
			"costo_bruto = EXCLUDED.costo_bruto, costo_neto = EXCLUDED.costo_neto, " +
			"porcentaje_utilidad = EXCLUDED.porcentaje_utilidad, utilidad_pesos = EXCLUDED.utilidad_pesos, " +
			"precio_venta = EXCLUDED.precio_venta, updated_at = now();\n")
	}
	b.WriteString("\nCOMMIT;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
