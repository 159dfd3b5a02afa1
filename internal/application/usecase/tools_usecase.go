package usecase

import (
	"strings"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/pricing"
	"github.com/jhoicas/ferreteria-api/pkg/rut"
)

// ToolsUseCase cálculos sin estado que usa el storefront mientras el usuario escribe.
type ToolsUseCase struct{}

// NewToolsUseCase construye el caso de uso.
func NewToolsUseCase() *ToolsUseCase { return &ToolsUseCase{} }

// CheckRUT formatea siempre; solo Valid indica si el RUT es aceptable.
func (uc *ToolsUseCase) CheckRUT(in dto.RUTRequest) dto.RUTResponse {
	clean := rut.Clean(in.Value)
	out := dto.RUTResponse{
		Clean:   clean,
		Display: rut.Format(in.Value),
		Body:    rut.Body(in.Value),
		Valid:   rut.IsValid(in.Value),
	}
	if out.Body != "" {
		out.CheckDigit = rut.CheckDigit(out.Body)
	}
	if !out.Valid {
		out.Message = domain.ErrInvalidRUT.Error()
	}
	return out
}

// FormatRUTDigits formatea un cuerpo guardado sin dígito verificador. La respuesta sale
// toda del mismo cuerpo: un cuerpo de más de 8 dígitos se muestra completo pero no es válido.
func (uc *ToolsUseCase) FormatRUTDigits(digits string) dto.RUTResponse {
	display := rut.FormatDigits(digits)
	if display == "" {
		return dto.RUTResponse{Message: domain.ErrInvalidRUT.Error()}
	}
	grouped, dv, _ := strings.Cut(display, "-")
	full := strings.ReplaceAll(grouped, ".", "")
	body := strings.TrimLeft(full, "0")
	out := dto.RUTResponse{
		Clean:      full + dv,
		Display:    display,
		Body:       body,
		CheckDigit: dv,
		Valid:      body != "" && len(body) <= rut.MaxBodyLen,
	}
	if !out.Valid {
		out.Message = domain.ErrInvalidRUT.Error()
	}
	return out
}

// Recompute recalcula el formulario de precios desde el campo editado.
func (uc *ToolsUseCase) Recompute(in dto.RecomputeRequest) (*dto.RecomputeResponse, error) {
	src, err := pricing.ParseEditSource(in.Edited)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	r := pricing.Recompute(src, pricing.RecordFromForm(in.Form()))
	return &dto.RecomputeResponse{
		Edited:        src.String(),
		GrossCost:     r.GrossCost,
		NetCost:       r.NetCost,
		MarginPercent: r.MarginPercent,
		MarginAmount:  r.MarginAmount,
		Price:         r.FinalPrice,
	}, nil
}
