package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type UnprocessableEntityResponse struct {
	Message string            `json:"message"`
	Details []ValidationError `json:"details"`
}

func ValidateRequest(obj any) []ValidationError {
	var validationErrors []ValidationError

	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []ValidationError{{Field: "body", Message: "Requisição inválida", Type: "invalid"}}
	}
	for _, fe := range fieldErrors {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}

	return validationErrors
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Campo obrigatório"
	case "min":
		return "Valor muito curto"
	case "max":
		return "Valor muito longo"
	case "gt":
		return "Valor deve ser maior que " + err.Param()
	case "lte":
		return "Valor deve ser menor ou igual a " + err.Param()
	default:
		return "Valor inválido"
	}
}

// DecodeErrors describes a request body that could not be decoded at all:
// malformed JSON, a value of the wrong JSON type, or a field that is not part
// of the schema.
func DecodeErrors(err error) []ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []ValidationError{{
			Field:   field,
			Message: "Tipo inválido: esperado " + jsonTypeName(typeErr.Type),
			Type:    "type",
		}}
	}

	// encoding/json has no typed error for DisallowUnknownFields, only this
	// message. gin built with the jsoniter or go_json tags words it
	// differently and falls through to the generic body error below.
	const unknownPrefix = `json: unknown field "`
	if msg := err.Error(); strings.HasPrefix(msg, unknownPrefix) {
		return []ValidationError{{
			Field:   strings.TrimSuffix(strings.TrimPrefix(msg, unknownPrefix), `"`),
			Message: "Campo não permitido",
			Type:    "unknown_field",
		}}
	}

	return []ValidationError{{Field: "body", Message: "JSON inválido", Type: "json"}}
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "valor válido"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64, reflect.Int32:
		return "number"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.String()
	}
}

func RespondWithValidationError(c *gin.Context, validationErrors []ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, UnprocessableEntityResponse{
		Message: "Dados inválidos",
		Details: validationErrors,
	})
}

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"message": message,
	})
}
