package http

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/pricing"
	"github.com/jhoicas/ferreteria-api/pkg/rut"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// decimal.Decimal como número para que min=0, gt=0, etc. funcionen. Un monto fuera de
	// rango se informa como +Inf sin convertirlo, así falla max.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			if !pricing.InRange(d) {
				return math.Inf(1)
			}
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
		return rut.IsValid(fl.Field().String())
	})
	_ = v.RegisterValidation("edit_source", func(fl validator.FieldLevel) bool {
		_, err := pricing.ParseEditSource(fl.Field().String())
		return err == nil
	})
	return v
}

// errBadBody JSON que no se pudo decodificar.
var errBadBody = errors.New("cuerpo inválido")

// fieldErrors regla que falló por campo; se responde 422.
type fieldErrors map[string]string

func (f fieldErrors) Error() string { return "validación fallida" }

// bindAndValidate decodifica el body y aplica los tags validate. Un RUT con dígito
// verificador incorrecto se informa como domain.ErrInvalidRUT, igual que en el caso de uso.
func bindAndValidate(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errBadBody
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		fields := make(fieldErrors, len(verrs))
		for _, fe := range verrs {
			if fe.Tag() == "rut" {
				return domain.ErrInvalidRUT
			}
			fields[fe.Field()] = fe.Tag()
		}
		return fields
	}
	return nil
}
