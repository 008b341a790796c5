package models

import (
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// Transaction is a stored transaction record. Rows are never updated or deleted.
type Transaction struct {
	ID        int64   `json:"id"`
	CPF       string  `json:"cpf"`
	Tipo      string  `json:"tipo"`
	Valor     float64 `json:"valor"`
	Descricao string  `json:"descricao"`
}

// TransactionInput is the request body of POST /transacoes. Pointer fields
// let a missing key be told apart from a zero value.
type TransactionInput struct {
	CPF       *string `json:"cpf" validate:"required"`
	Tipo      *string `json:"tipo" validate:"required"`
	Valor     *Amount `json:"valor" validate:"required"`
	Descricao *string `json:"descricao" validate:"required"`
}

// Amount is a JSON number decoded from its literal digits, without a round
// trip through float64. Quoted numbers are rejected.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || (b[0] != '-' && (b[0] < '0' || b[0] > '9')) {
		return &json.UnmarshalTypeError{Value: jsonKind(b), Type: reflect.TypeOf(float64(0))}
	}
	return a.Decimal.UnmarshalJSON(b)
}

func jsonKind(b []byte) string {
	if len(b) == 0 {
		return "empty"
	}
	switch b[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "value"
	}
}
