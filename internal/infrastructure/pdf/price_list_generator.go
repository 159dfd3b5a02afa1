// Package pdf genera la lista de precios imprimible del catálogo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Fecha de emisión           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA                                                  │
//	│  SKU | Producto | Stock | Precio (IVA incluido)             │
//	│  ... una sección por categoría ...                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de precios                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
)

var _ usecase.PriceListGenerator = (*PriceListGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 196, Green: 30, Blue: 58}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PriceListGenerator implementa usecase.PriceListGenerator con Maroto v2.
type PriceListGenerator struct {
	author string
}

// NewPriceListGenerator construye el generador; author queda en los metadatos del PDF.
func NewPriceListGenerator(author string) *PriceListGenerator {
	return &PriceListGenerator{author: author}
}

// GeneratePriceList renderiza las secciones y devuelve los bytes del PDF.
func (g *PriceListGenerator) GeneratePriceList(
	_ context.Context,
	title string,
	issuedAt time.Time,
	sections []usecase.PriceListSection,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(title, issuedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(sections) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No hay productos activos.", props.Text{Size: 10, Align: align.Center, Top: 4, Color: colorGray}),
		)))
	}
	for _, s := range sections {
		m.AddRows(sectionRows(s)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, issuedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2}),
		),
		col.New(4).Add(
			text.New("Emitida: "+issuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionRows(s usecase.PriceListSection) []core.Row {
	rows := []core.Row{
		row.New(4),
		row.New(8).Add(col.New(12).Add(
			text.New(s.Category, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1}),
		)),
		tableHeaderRow(),
	}
	for _, it := range s.Items {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(it.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(formatCLP(it.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("SKU", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Stock", 1, align.Center),
		h("Precio", 3, align.Right),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Precios en pesos chilenos, IVA incluido. Sujetos a cambio sin previo aviso.", props.Text{
			Size: 7, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatCLP "$" más el monto entero con punto de miles: 1190 -> "$1.190".
func formatCLP(v decimal.Decimal) string {
	s := v.StringFixed(0)
	sign := ""
	if s != "" && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + "$" + string(buf)
}
