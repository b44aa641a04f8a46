package dto

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// accountCodePattern patrón del código contable de producto: XXX-###.
var accountCodePattern = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar errores con el nombre del campo JSON, no el del struct.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	_ = v.RegisterValidation("account_code", func(fl validator.FieldLevel) bool {
		return accountCodePattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate valida un DTO con sus tags y devuelve un error legible por campo.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), validationMessage(fe)))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "no es un email válido"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
	case "account_code":
		return "debe cumplir el patrón XXX-### (ej. PRD-001)"
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}
