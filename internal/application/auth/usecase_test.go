package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/application/auth"
	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/infrastructure/inmemory"
	"github.com/jhoicas/ferreteria-api/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "ferreteria-test"}

func TestRegisterYLogin(t *testing.T) {
	repo := inmemory.NewUserRepository()
	uc := auth.NewAuthUseCase(repo, jwtCfg)
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		RUT: "12.345.678-5", Email: "Cliente@Correo.cl", Password: "secreto123", Name: "Cliente",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, user.Role)
	assert.Equal(t, "12.345.678-5", user.RUTDisplay)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "cliente@correo.cl", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)

	claims, err := jwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleCliente, claims.Role)
}

func TestRegister_RUTInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(inmemory.NewUserRepository(), jwtCfg)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		RUT: "12.345.678-0", Email: "a@b.cl", Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRUT)
}

func TestLogin_Errores(t *testing.T) {
	repo := inmemory.NewUserRepository()
	uc := auth.NewAuthUseCase(repo, jwtCfg)
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.cl", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "x@b.cl", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.cl", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	u, err := repo.GetByEmail(ctx, "a@b.cl")
	require.NoError(t, err)
	u.Status = entity.UserInactive
	require.NoError(t, repo.Update(ctx, u))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.cl", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
