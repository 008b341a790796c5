package cqrs

import "github.com/shopspring/decimal"

// CreateTransactionCommand carries the raw, not yet validated, request fields.
// Valor keeps the exact submitted digits.
type CreateTransactionCommand struct {
	CPF       string
	Tipo      string
	Valor     decimal.Decimal
	Descricao string
}
