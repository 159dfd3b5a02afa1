package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepository)(nil)

// ProviderRepository proveedores en memoria.
type ProviderRepository struct {
	mu   sync.RWMutex
	byID map[string]entity.Provider
}

// NewProviderRepository crea el repositorio.
func NewProviderRepository() *ProviderRepository {
	return &ProviderRepository{byID: make(map[string]entity.Provider)}
}

func (r *ProviderRepository) Create(_ context.Context, p *entity.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.RUT == p.RUT {
			return domain.ErrRUTAlreadyExists
		}
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *ProviderRepository) GetByID(_ context.Context, id string) (*entity.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProviderRepository) GetByRUT(_ context.Context, rut int64) (*entity.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.byID {
		if p.RUT == rut {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ProviderRepository) Update(_ context.Context, p *entity.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *ProviderRepository) List(_ context.Context, limit, offset int) ([]*entity.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.Provider, 0, len(r.byID))
	for _, p := range r.byID {
		cp := p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}
