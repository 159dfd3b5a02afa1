package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

const uncategorized = "Sin categoría"

// PriceListItem línea de la lista de precios.
type PriceListItem struct {
	SKU   string
	Name  string
	Stock int
	Price decimal.Decimal
}

// PriceListSection productos de una categoría.
type PriceListSection struct {
	Category string
	Items    []PriceListItem
}

// PriceListGenerator puerto de salida que renderiza la lista (PDF).
type PriceListGenerator interface {
	GeneratePriceList(ctx context.Context, title string, issuedAt time.Time, sections []PriceListSection) ([]byte, error)
}

// PriceListUseCase arma la lista de precios de productos activos agrupada por categoría.
type PriceListUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	gen        PriceListGenerator
	storeName  string
}

// NewPriceListUseCase construye el caso de uso.
func NewPriceListUseCase(products repository.ProductRepository, categories repository.CategoryRepository, gen PriceListGenerator, storeName string) *PriceListUseCase {
	return &PriceListUseCase{products: products, categories: categories, gen: gen, storeName: storeName}
}

// Sections agrupa los productos activos por categoría, ordenados por nombre.
func (uc *PriceListUseCase) Sections(ctx context.Context) ([]PriceListSection, error) {
	cats, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	grouped := make(map[string][]PriceListItem)
	const pageSize = 100
	for offset := 0; ; offset += pageSize {
		page, _, err := uc.products.List(ctx, repository.ProductFilter{OnlyActive: true, Limit: pageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		for _, p := range page {
			cat, ok := names[p.CategoryID]
			if !ok {
				cat = uncategorized
			}
			grouped[cat] = append(grouped[cat], PriceListItem{SKU: p.SKU, Name: p.Name, Stock: p.Stock, Price: p.Price})
		}
		if len(page) < pageSize {
			break
		}
	}

	sections := make([]PriceListSection, 0, len(grouped))
	for cat, items := range grouped {
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		sections = append(sections, PriceListSection{Category: cat, Items: items})
	}
	sort.Slice(sections, func(i, j int) bool {
		// "Sin categoría" siempre al final
		if sections[i].Category == uncategorized || sections[j].Category == uncategorized {
			return sections[j].Category == uncategorized && sections[i].Category != uncategorized
		}
		return sections[i].Category < sections[j].Category
	})
	return sections, nil
}

// GeneratePDF devuelve la lista de precios renderizada.
func (uc *PriceListUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	sections, err := uc.Sections(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := uc.gen.GeneratePriceList(ctx, "Lista de precios "+uc.storeName, time.Now(), sections)
	if err != nil {
		return nil, fmt.Errorf("lista de precios: %w", err)
	}
	return doc, nil
}
