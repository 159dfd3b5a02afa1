package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
)

// ToolsHandler cálculos que el storefront pide mientras el usuario escribe.
type ToolsHandler struct {
	uc *usecase.ToolsUseCase
}

// NewToolsHandler construye el handler.
func NewToolsHandler(uc *usecase.ToolsUseCase) *ToolsHandler {
	return &ToolsHandler{uc: uc}
}

// ValidateRUT godoc
// @Summary      Validar RUT
// @Description  Siempre devuelve el RUT formateado; valid indica si el dígito verificador corresponde.
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RUTRequest  true  "Texto ingresado"
// @Success      200   {object}  dto.RUTResponse
// @Router       /api/tools/rut/validate [post]
func (h *ToolsHandler) ValidateRUT(c *fiber.Ctx) error {
	var in dto.RUTRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, errBadBody)
	}
	return c.JSON(h.uc.CheckRUT(in))
}

// FormatRUT godoc
// @Summary      Formatear RUT desde el cuerpo numérico
// @Description  Calcula el dígito verificador de value (solo dígitos) y lo formatea.
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RUTRequest  true  "Cuerpo sin dígito verificador"
// @Success      200   {object}  dto.RUTResponse
// @Router       /api/tools/rut/format [post]
func (h *ToolsHandler) FormatRUT(c *fiber.Ctx) error {
	var in dto.RUTRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, errBadBody)
	}
	return c.JSON(h.uc.FormatRUTDigits(in.Value))
}

// Recompute godoc
// @Summary      Recalcular formulario de precios
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecomputeRequest  true  "Campo editado y valores actuales"
// @Success      200   {object}  dto.RecomputeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tools/pricing/recompute [post]
func (h *ToolsHandler) Recompute(c *fiber.Ctx) error {
	var in dto.RecomputeRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, errBadBody)
	}
	out, err := h.uc.Recompute(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
