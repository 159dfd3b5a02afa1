package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ferreteria-api/internal/application/auth"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
)

// HealthCheck verificación de una dependencia externa (DB, Redis).
type HealthCheck func(ctx context.Context) error

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	PriceListUC *usecase.PriceListUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProviderUC  *usecase.ProviderUseCase
	UserUC      *usecase.UserUseCase
	ToolsUC     *usecase.ToolsUseCase
	JWTSecret   string
	ServiceName string
	Checks      map[string]HealthCheck
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	app.Get("/health", health(deps.ServiceName, deps.Checks))

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Herramientas del storefront (público, sin estado)
	tools := NewToolsHandler(deps.ToolsUC)
	api.Post("/tools/rut/validate", tools.ValidateRUT)
	api.Post("/tools/rut/format", tools.FormatRUT)
	api.Post("/tools/pricing/recompute", tools.Recompute)

	// Products: catálogo público, escritura solo admin
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.PriceListUC)
	products.Get("/price-list.pdf", requireAuth, adminOnly, productHandler.PriceList)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireAuth, adminOnly, productHandler.Create)
	products.Put("/:id", requireAuth, adminOnly, productHandler.Update)
	products.Delete("/:id", requireAuth, adminOnly, productHandler.Delete)

	// Categories: listado público para la navegación
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)
	api.Post("/categories", requireAuth, adminOnly, categoryHandler.Create)

	// Providers (admin)
	providers := api.Group("/providers", requireAuth, adminOnly)
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Get("/", providerHandler.List)
	providers.Post("/", providerHandler.Create)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Put("/:id", providerHandler.Update)

	// Users (admin)
	users := api.Group("/users", requireAuth, adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
}

// health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func health(service string, checks map[string]HealthCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		status := fiber.StatusOK
		deps := fiber.Map{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				deps[name] = "error"
				status = fiber.StatusServiceUnavailable
				continue
			}
			deps[name] = "connected"
		}
		return c.Status(status).JSON(fiber.Map{
			"status":  map[bool]string{true: "ok", false: "degraded"}[status == fiber.StatusOK],
			"service": service,
			"deps":    deps,
		})
	}
}
