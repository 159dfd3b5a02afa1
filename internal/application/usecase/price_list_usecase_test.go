package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
)

type fakeGenerator struct {
	title    string
	sections []usecase.PriceListSection
	err      error
}

func (f *fakeGenerator) GeneratePriceList(_ context.Context, title string, _ time.Time, sections []usecase.PriceListSection) ([]byte, error) {
	f.title, f.sections = title, sections
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func TestPriceList_AgrupaPorCategoria(t *testing.T) {
	c := newCatalog()
	ctx := context.Background()
	cats := usecase.NewCategoryUseCase(c.categories)
	herr, err := cats.Create(ctx, dto.CreateCategoryRequest{Name: "Herramientas"})
	require.NoError(t, err)
	elec, err := cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electricidad"})
	require.NoError(t, err)

	for _, p := range []dto.CreateProductRequest{
		{SKU: "H2", Name: "Serrucho", CategoryID: herr.ID, NetCost: d("1000")},
		{SKU: "H1", Name: "Martillo", CategoryID: herr.ID, NetCost: d("2000")},
		{SKU: "E1", Name: "Cable", CategoryID: elec.ID, NetCost: d("500")},
		{SKU: "S1", Name: "Suelto"},
	} {
		_, err := c.uc.Create(ctx, p)
		require.NoError(t, err)
	}

	gen := &fakeGenerator{}
	uc := usecase.NewPriceListUseCase(c.products, c.categories, gen, "Ferretería Central")
	doc, err := uc.GeneratePDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(doc))
	assert.Equal(t, "Lista de precios Ferretería Central", gen.title)

	require.Len(t, gen.sections, 3)
	assert.Equal(t, "Electricidad", gen.sections[0].Category)
	assert.Equal(t, "Herramientas", gen.sections[1].Category)
	assert.Equal(t, "Sin categoría", gen.sections[2].Category)
	assert.Equal(t, "Martillo", gen.sections[1].Items[0].Name)
	assert.True(t, d("2000").Equal(gen.sections[1].Items[0].Price))
}

func TestPriceList_ErrorDelGenerador(t *testing.T) {
	c := newCatalog()
	gen := &fakeGenerator{err: errors.New("sin fuentes")}
	uc := usecase.NewPriceListUseCase(c.products, c.categories, gen, "X")
	_, err := uc.GeneratePDF(context.Background())
	assert.ErrorIs(t, err, gen.err)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newCatalog().categories)
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Pinturas"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "pinturas"})
	assert.Error(t, err)
}
