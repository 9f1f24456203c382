// Package validation checks form input before it is sent to the backend.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/apperr"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("breed", func(fl validator.FieldLevel) bool {
			return models.Breed(fl.Field().String()).Valid()
		})
		instance = v
	})
	return instance
}

// Struct validates v and returns the first failure as an *apperr.Error whose
// Field is the JSON name of the offending field.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Validation("", "%s", apperr.MsgInvalidInput)
	}

	fe := pick(fieldErrs)
	return apperr.Validation(fe.Field(), "%s", describe(fe))
}

// rangeTags take precedence over other failures when picking the reported
// field.
var rangeTags = map[string]bool{
	"latitude": true, "longitude": true, "gt": true, "gte": true, "lt": true, "lte": true,
}

func pick(errs validator.ValidationErrors) validator.FieldError {
	for _, fe := range errs {
		if rangeTags[fe.Tag()] {
			return fe
		}
	}
	return errs[0]
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return "El campo " + field + " es obligatorio"
	case "gte":
		return "El campo " + field + " debe ser mayor o igual a " + fe.Param()
	case "lte":
		return "El campo " + field + " debe ser menor o igual a " + fe.Param()
	case "gt":
		return "El campo " + field + " debe ser mayor a " + fe.Param()
	case "min":
		return "El campo " + field + " debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "El campo " + field + " no puede superar " + fe.Param() + " caracteres"
	case "email":
		return "El campo " + field + " debe ser un correo válido"
	case "oneof":
		return "El campo " + field + " debe ser uno de: " + fe.Param()
	case "latitude":
		return "El campo " + field + " debe estar entre -90 y 90"
	case "longitude":
		return "El campo " + field + " debe estar entre -180 y 180"
	case "breed":
		return fmt.Sprintf("Raza no soportada: %v", fe.Value())
	default:
		return "El campo " + field + " no es válido"
	}
}
