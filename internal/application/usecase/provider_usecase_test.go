package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/infrastructure/inmemory"
)

func TestProviderCreate_GuardaCuerpoYFormatea(t *testing.T) {
	uc := usecase.NewProviderUseCase(inmemory.NewProviderRepository())
	out, err := uc.Create(context.Background(), dto.CreateProviderRequest{
		RUT: "12345678-5", Name: "Distribuidora Sur", Phone: "9 1234 5678",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12345678), out.RUT)
	assert.Equal(t, "12.345.678-5", out.RUTDisplay)
	assert.Equal(t, "+56912345678", out.Phone)
}

func TestProviderCreate_RUTInvalido(t *testing.T) {
	uc := usecase.NewProviderUseCase(inmemory.NewProviderRepository())
	_, err := uc.Create(context.Background(), dto.CreateProviderRequest{RUT: "12.345.678-9", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidRUT)

	_, err = uc.Create(context.Background(), dto.CreateProviderRequest{RUT: "", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProviderCreate_RUTDuplicadoEnOtroFormato(t *testing.T) {
	uc := usecase.NewProviderUseCase(inmemory.NewProviderRepository())
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateProviderRequest{RUT: "12.345.678-5", Name: "A"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProviderRequest{RUT: "123456785", Name: "B"})
	assert.ErrorIs(t, err, domain.ErrRUTAlreadyExists)
}

func TestProviderCreate_TelefonoInvalido(t *testing.T) {
	uc := usecase.NewProviderUseCase(inmemory.NewProviderRepository())
	_, err := uc.Create(context.Background(), dto.CreateProviderRequest{RUT: "11111111-1", Name: "A", Phone: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
}

func TestProviderUpdate_CambiaRUT(t *testing.T) {
	uc := usecase.NewProviderUseCase(inmemory.NewProviderRepository())
	ctx := context.Background()
	a, err := uc.Create(ctx, dto.CreateProviderRequest{RUT: "11111111-1", Name: "A"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProviderRequest{RUT: "22222222-2", Name: "B"})
	require.NoError(t, err)

	taken := "22.222.222-2"
	_, err = uc.Update(ctx, a.ID, dto.UpdateProviderRequest{RUT: &taken})
	assert.ErrorIs(t, err, domain.ErrRUTAlreadyExists)

	free := "12345678-5"
	out, err := uc.Update(ctx, a.ID, dto.UpdateProviderRequest{RUT: &free})
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5", out.RUTDisplay)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
