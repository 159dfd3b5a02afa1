package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/domain/pricing"
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

// ProductCache caché de lectura del catálogo. Los errores de caché nunca bloquean la petición.
type ProductCache interface {
	Get(ctx context.Context, id string) (*dto.ProductResponse, bool)
	Set(ctx context.Context, p *dto.ProductResponse)
	Invalidate(ctx context.Context, id string)
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*dto.ProductResponse, bool) { return nil, false }
func (noopCache) Set(context.Context, *dto.ProductResponse)                {}
func (noopCache) Invalidate(context.Context, string)                       {}

// ProductUseCase CRUD de productos. Los cinco campos de precio se guardan siempre
// recalculados por el motor de precios a partir del campo que editó el usuario.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	providers  repository.ProviderRepository
	cache      ProductCache
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	providers repository.ProviderRepository,
	cache ProductCache,
) *ProductUseCase {
	if cache == nil {
		cache = noopCache{}
	}
	return &ProductUseCase{repo: repo, categories: categories, providers: providers, cache: cache}
}

// Create crea un producto con el desglose de precios consistente.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	if in.SKU == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	src, err := pricing.ParseEditSource(in.Edited)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkRefs(ctx, in.CategoryID, in.ProviderID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CategoryID:  in.CategoryID,
		ProviderID:  in.ProviderID,
		Stock:       in.Stock,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	product.SetPricing(pricing.Recompute(src, pricing.Record{
		GrossCost:     in.GrossCost,
		NetCost:       in.NetCost,
		MarginPercent: in.MarginPercent,
		MarginAmount:  in.MarginAmount,
		FinalPrice:    in.Price,
	}))
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, pasando por la caché.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if out, ok := uc.cache.Get(ctx, id); ok {
		return out, nil
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := toProductResponse(product)
	uc.cache.Set(ctx, out)
	return out, nil
}

// Update actualiza un producto. Si cambian campos de precio se recalcula el desglose:
// con Edited explícito se usa ese campo; si no, el único campo de precio enviado;
// si vienen varios, la prioridad neto > bruto > precio del motor.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	src, err := pricing.ParseEditSource(in.Edited)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	catID, provID := product.CategoryID, product.ProviderID
	if in.CategoryID != nil {
		catID = *in.CategoryID
	}
	if in.ProviderID != nil {
		provID = *in.ProviderID
	}
	if err := uc.checkRefs(ctx, catID, provID); err != nil {
		return nil, err
	}
	product.CategoryID, product.ProviderID = catID, provID

	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Active != nil {
		product.Active = *in.Active
	}

	rec, changed := mergePricing(product.Pricing(), in)
	if changed || src != pricing.SourceNone {
		if src == pricing.SourceNone {
			src = inferSource(in)
		}
		product.SetPricing(pricing.Recompute(src, rec))
	}

	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, id)
	return toProductResponse(product), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery, onlyActive bool) (*dto.ProductListResponse, error) {
	q.DefaultPage()
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		CategoryID: q.CategoryID,
		Search:     strings.TrimSpace(q.Search),
		OnlyActive: onlyActive,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, id)
	return nil
}

func (uc *ProductUseCase) checkRefs(ctx context.Context, categoryID, providerID string) error {
	if categoryID != "" {
		c, err := uc.categories.GetByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
	}
	if providerID != "" {
		p, err := uc.providers.GetByID(ctx, providerID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func mergePricing(r pricing.Record, in dto.UpdateProductRequest) (pricing.Record, bool) {
	changed := false
	set := func(dst *decimal.Decimal, v *decimal.Decimal) {
		if v != nil {
			*dst = *v
			changed = true
		}
	}
	set(&r.GrossCost, in.GrossCost)
	set(&r.NetCost, in.NetCost)
	set(&r.MarginPercent, in.MarginPercent)
	set(&r.MarginAmount, in.MarginAmount)
	set(&r.FinalPrice, in.Price)
	return r, changed
}

func inferSource(in dto.UpdateProductRequest) pricing.EditSource {
	var sources []pricing.EditSource
	if in.NetCost != nil {
		sources = append(sources, pricing.SourceNetCost)
	}
	if in.GrossCost != nil {
		sources = append(sources, pricing.SourceGrossCost)
	}
	if in.Price != nil {
		sources = append(sources, pricing.SourceFinalPrice)
	}
	if in.MarginPercent != nil {
		sources = append(sources, pricing.SourceMarginPercent)
	}
	if in.MarginAmount != nil {
		sources = append(sources, pricing.SourceMarginAmount)
	}
	if len(sources) == 1 {
		return sources[0]
	}
	return pricing.SourceNone
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		ProviderID:    p.ProviderID,
		Stock:         p.Stock,
		GrossCost:     p.GrossCost,
		NetCost:       p.NetCost,
		MarginPercent: p.MarginPercent,
		MarginAmount:  p.MarginAmount,
		Price:         p.Price,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
