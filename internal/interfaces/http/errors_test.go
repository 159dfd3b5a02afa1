package http

import (
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/domain"
)

func errorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(*fiber.Ctx) error { return err })
	return app
}

func TestFail_VariosSentinelsSiempreMismoCodigo(t *testing.T) {
	app := errorApp(errors.Join(domain.ErrNotFound, fmt.Errorf("proveedor: %w", domain.ErrRUTAlreadyExists)))

	for i := 0; i < 50; i++ {
		resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		require.Equal(t, nethttp.StatusConflict, resp.StatusCode)
		require.Equal(t, "RUT_EXISTS", body.Code)
	}
}

func TestFail_ErrorNoControlado(t *testing.T) {
	resp, err := errorApp(errors.New("boom")).Test(httptest.NewRequest(nethttp.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
}

func TestDomainErrors_SinRepetidos(t *testing.T) {
	seen := map[error]bool{}
	for _, he := range domainErrors {
		assert.False(t, seen[he.target], he.code)
		seen[he.target] = true
	}
}
