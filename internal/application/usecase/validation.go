package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/company-reviews-api/internal/domain"
)

// IDValidator informa si un identificador tiene el formato del almacén de documentos.
type IDValidator func(id string) bool

// checkID valida un identificador antes de cualquier acceso al almacén.
func checkID(valid IDValidator, field, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.Invalid(field, domain.MsgIDRequired)
	}
	if !valid(id) {
		return domain.Invalid(field, domain.MsgInvalidID)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct traduce el primer error de validación a un domain.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.Invalid(fe.Field(), fe.Field()+" is required")
	case "min":
		return domain.Invalid(fe.Field(), fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
	case "max":
		return domain.Invalid(fe.Field(), fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
	default:
		return domain.Invalid(fe.Field(), fe.Field()+" is invalid")
	}
}
