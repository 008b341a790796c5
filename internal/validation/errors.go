package validation

import (
	"errors"
	"strings"
)

// ErrInvalidInput is matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// RuleError is the failure of a single field rule. Tag names the rule that
// failed, in the same vocabulary the request validator uses.
type RuleError struct {
	Tag     string
	Message string
}

func (e *RuleError) Error() string { return e.Message }

var (
	ErrInvalidCPF        = &RuleError{Tag: "cpf", Message: "CPF inválido"}
	ErrTipoNotAllowed    = &RuleError{Tag: "oneof", Message: "Tipo de transação não permitido"}
	ErrValorNotPositive  = &RuleError{Tag: "gt", Message: "Valor deve ser positivo"}
	ErrValorAboveLimit   = &RuleError{Tag: "lte", Message: "Valor acima do limite permitido"}
	ErrDescricaoTooShort = &RuleError{Tag: "min", Message: "Descrição muito curta"}
)

type FieldError struct {
	Field string
	Err   *RuleError
}

// InvalidInputError lists every field that failed validation, in rule order.
type InvalidInputError struct {
	Fields []FieldError
}

func (e *InvalidInputError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Err.Message
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }
