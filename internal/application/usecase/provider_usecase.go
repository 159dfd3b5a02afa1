package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
	"github.com/jhoicas/ferreteria-api/pkg/phone"
	"github.com/jhoicas/ferreteria-api/pkg/rut"
)

// ProviderUseCase casos de uso de proveedores. El RUT se valida y se guarda solo el cuerpo.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// Create registra un proveedor. ErrInvalidRUT si el dígito verificador no corresponde.
func (uc *ProviderUseCase) Create(ctx context.Context, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	r, err := parseRequiredRUT(in.RUT)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByRUT(ctx, r.Number())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrRUTAlreadyExists
	}
	tel, err := normalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	provider := &entity.Provider{
		ID:          uuid.New().String(),
		RUT:         r.Number(),
		Name:        strings.TrimSpace(in.Name),
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       tel,
		Address:     in.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// GetByID obtiene un proveedor; nil si no existe.
func (uc *ProviderUseCase) GetByID(ctx context.Context, id string) (*dto.ProviderResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// Update modifica un proveedor. Cambiar el RUT vuelve a validar unicidad.
func (uc *ProviderUseCase) Update(ctx context.Context, id string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.RUT != nil {
		r, err := parseRequiredRUT(*in.RUT)
		if err != nil {
			return nil, err
		}
		if r.Number() != p.RUT {
			other, err := uc.repo.GetByRUT(ctx, r.Number())
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrRUTAlreadyExists
			}
			p.RUT = r.Number()
		}
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.ContactName != nil {
		p.ContactName = *in.ContactName
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Phone != nil {
		tel, err := normalizePhone(*in.Phone)
		if err != nil {
			return nil, err
		}
		p.Phone = tel
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// List lista proveedores paginados.
func (uc *ProviderUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ProviderResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProviderResponse(p))
	}
	return out, nil
}

// parseRequiredRUT traduce los errores del paquete rut a errores de dominio.
func parseRequiredRUT(raw string) (rut.RUT, error) {
	r, err := rut.Parse(raw)
	if err != nil {
		if errors.Is(err, rut.ErrEmpty) {
			return rut.RUT{}, domain.ErrInvalidInput
		}
		return rut.RUT{}, domain.ErrInvalidRUT
	}
	return r, nil
}

// parseOptionalRUT vacío o cero equivale a "sin RUT".
func parseOptionalRUT(raw string) (int64, error) {
	if rut.IsEmpty(raw) {
		return 0, nil
	}
	r, err := rut.Parse(raw)
	if err != nil {
		return 0, domain.ErrInvalidRUT
	}
	return r.Number(), nil
}

func normalizePhone(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	tel, err := phone.Normalize(raw)
	if err != nil {
		return "", domain.ErrInvalidPhone
	}
	return tel, nil
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:          p.ID,
		RUT:         p.RUT,
		RUTDisplay:  p.DisplayRUT(),
		Name:        p.Name,
		ContactName: p.ContactName,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
