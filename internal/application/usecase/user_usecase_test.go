package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/infrastructure/inmemory"
)

func TestNewUser_NormalizaYHashea(t *testing.T) {
	repo := inmemory.NewUserRepository()
	u, err := usecase.NewUser(context.Background(), repo, "6-k", " Ana@Correo.CL ", "secreto123", "Ana", "", "")
	require.NoError(t, err)
	assert.Equal(t, "ana@correo.cl", u.Email)
	assert.Equal(t, int64(6), u.RUT)
	assert.Equal(t, entity.RoleCliente, u.Role)
	assert.NotEqual(t, "secreto123", u.PasswordHash)

	resp := usecase.ToUserResponse(u)
	assert.Equal(t, "6-K", resp.RUTDisplay)
}

func TestNewUser_SinRUT(t *testing.T) {
	repo := inmemory.NewUserRepository()
	u, err := usecase.NewUser(context.Background(), repo, "", "a@b.cl", "secreto123", "", "", entity.RoleVendedor)
	require.NoError(t, err)
	assert.Zero(t, u.RUT)
	assert.Equal(t, "a@b.cl", u.Name)
	assert.Empty(t, usecase.ToUserResponse(u).RUTDisplay)
}

func TestNewUser_Errores(t *testing.T) {
	repo := inmemory.NewUserRepository()
	ctx := context.Background()
	_, err := usecase.NewUser(ctx, repo, "11.111.111-1", "a@b.cl", "secreto123", "A", "", "")
	require.NoError(t, err)

	_, err = usecase.NewUser(ctx, repo, "", "A@B.cl", "secreto123", "B", "", "")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = usecase.NewUser(ctx, repo, "111111111", "c@d.cl", "secreto123", "C", "", "")
	assert.ErrorIs(t, err, domain.ErrRUTAlreadyExists)

	_, err = usecase.NewUser(ctx, repo, "11.111.111-2", "e@f.cl", "secreto123", "E", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidRUT)

	_, err = usecase.NewUser(ctx, repo, "", "", "secreto123", "E", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_CreateYList(t *testing.T) {
	uc := usecase.NewUserUseCase(inmemory.NewUserRepository())
	ctx := context.Background()
	out, err := uc.Create(ctx, dto.CreateUserRequest{
		Email: "vendedor@ferre.cl", Password: "secreto123", Name: "Vendedor", Role: entity.RoleVendedor,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, out.Role)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "vendedor@ferre.cl", list[0].Email)
}

func TestEnsureAdmin_Idempotente(t *testing.T) {
	repo := inmemory.NewUserRepository()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	created, err := uc.EnsureAdmin(ctx, "Admin@Ferre.cl", "secreto123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureAdmin(ctx, "admin@ferre.cl", "otra-clave")
	require.NoError(t, err)
	assert.False(t, created)

	u, err := repo.GetByEmail(ctx, "admin@ferre.cl")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)
}
