package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/ttacon/libphonenumber"

	"github.com/jhoicas/bill-automation-api/internal/domain"
)

// phoneRegion región por defecto para números sin prefijo internacional.
const phoneRegion = "IN"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los nombres de campo en errores siguen el JSON (contactNo, no ContactNo).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("inphone", validIndianPhone); err != nil {
		panic(err)
	}
	return v
}

func validIndianPhone(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	return ValidatePhoneNumber(s, phoneRegion) == nil
}

// ValidatePhoneNumber comprueba que el número sea válido para la región dada.
func ValidatePhoneNumber(phone, region string) error {
	p, err := libphonenumber.Parse(phone, region)
	if err != nil {
		return err
	}
	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("número de teléfono no válido")
	}
	return nil
}

// bindJSON parsea el body y valida las etiquetas validate del DTO.
func bindJSON(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewValidationError("body", "cuerpo inválido")
	}
	return validateStruct(out)
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return domain.NewValidationError(fieldPath(fe), describeTag(fe))
	}
	return domain.NewValidationError("body", err.Error())
}

// fieldPath quita el nombre del struct raíz: "GenerateBillRequest.items[0].lrNo" -> "items[0].lrNo".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "requerido"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "max":
		return "máximo " + fe.Param()
	case "min":
		return "mínimo " + fe.Param()
	case "len":
		return "longitud exacta " + fe.Param()
	case "inphone":
		return "número de teléfono no válido"
	case "email":
		return "email no válido"
	default:
		return "no válido (" + fe.Tag() + ")"
	}
}
