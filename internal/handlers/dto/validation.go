package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
)

var registerOnce sync.Once

// RegisterValidators registra as tags faction e visibility no validator do gin
// e faz as mensagens usarem o nome JSON (ou form) do campo
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(fieldName)

		_ = v.RegisterValidation("faction", func(fl validator.FieldLevel) bool {
			return entities.Faction(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("visibility", func(fl validator.FieldLevel) bool {
			return entities.ProfileVisibility(fl.Field().String()).IsValid()
		})
	})
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// BindingErrorResponse converte o erro de ShouldBind* em uma resposta 400.
// Erros de sintaxe do corpo viram um único item sem campo.
func BindingErrorResponse(c *gin.Context, err error) ErrorResponse {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return ValidationErrorResponseI18n(c, []ValidationError{{
			Field:   "body",
			Message: T(c, "validation.invalid", map[string]interface{}{"Field": "body"}),
		}})
	}

	out := make([]ValidationError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(c, fe),
			Tag:     fe.Tag(),
			Value:   safeValue(fe),
		})
	}
	return ValidationErrorResponseI18n(c, out)
}

func validationMessage(c *gin.Context, fe validator.FieldError) string {
	params := map[string]interface{}{"Field": fe.Field(), "Param": fe.Param()}

	switch fe.Tag() {
	case "required", "email", "min", "max", "faction", "visibility":
		return T(c, "validation."+fe.Tag(), params)
	default:
		return T(c, "validation.invalid", params)
	}
}

// safeValue nunca devolve senhas
func safeValue(fe validator.FieldError) string {
	if fe.Field() == "password" {
		return ""
	}
	if s, ok := fe.Value().(string); ok {
		return s
	}
	if fe.Value() == nil {
		return ""
	}
	return fmt.Sprint(fe.Value())
}
