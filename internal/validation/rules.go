package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/eaglebank/financeiro/internal/cqrs"
	"github.com/eaglebank/financeiro/internal/models"
	"github.com/shopspring/decimal"
)

const MinDescricaoLength = 5

var (
	ValorLimit = decimal.NewFromInt(100_000)

	allowedTipos = map[string]struct{}{
		"pix":    {},
		"ted":    {},
		"doc":    {},
		"boleto": {},
	}
)

// CPF strips '.' and '-' and requires exactly 11 ASCII digits. Check digits
// are not verified.
func CPF(raw string) (string, error) {
	v := strings.NewReplacer(".", "", "-", "").Replace(raw)
	if len(v) != 11 {
		return "", ErrInvalidCPF
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return "", ErrInvalidCPF
		}
	}
	return v, nil
}

// Tipo matches case-insensitively and returns the lowercase form.
func Tipo(raw string) (string, error) {
	v := strings.ToLower(raw)
	if _, ok := allowedTipos[v]; !ok {
		return "", ErrTipoNotAllowed
	}
	return v, nil
}

// Valor requires 0 < v <= ValorLimit on the exact submitted value and
// returns it as the float64 that is stored. A value too small to survive
// the conversion counts as not positive.
func Valor(v decimal.Decimal) (float64, error) {
	if !v.IsPositive() {
		return 0, ErrValorNotPositive
	}
	if v.GreaterThan(ValorLimit) {
		return 0, ErrValorAboveLimit
	}
	f := v.InexactFloat64()
	if f <= 0 {
		return 0, ErrValorNotPositive
	}
	return f, nil
}

// Descricao checks the trimmed length in characters. The value itself is
// kept as submitted.
func Descricao(raw string) (string, error) {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) < MinDescricaoLength {
		return "", ErrDescricaoTooShort
	}
	return raw, nil
}

type rule struct {
	field string
	apply func(cmd cqrs.CreateTransactionCommand, tx *models.Transaction) error
}

var rules = []rule{
	{"cpf", func(cmd cqrs.CreateTransactionCommand, tx *models.Transaction) (err error) {
		tx.CPF, err = CPF(cmd.CPF)
		return err
	}},
	{"tipo", func(cmd cqrs.CreateTransactionCommand, tx *models.Transaction) (err error) {
		tx.Tipo, err = Tipo(cmd.Tipo)
		return err
	}},
	{"valor", func(cmd cqrs.CreateTransactionCommand, tx *models.Transaction) (err error) {
		tx.Valor, err = Valor(cmd.Valor)
		return err
	}},
	{"descricao", func(cmd cqrs.CreateTransactionCommand, tx *models.Transaction) (err error) {
		tx.Descricao, err = Descricao(cmd.Descricao)
		return err
	}},
}

// Transaction runs every rule and builds the normalised record. All failures
// are reported, not just the first.
func Transaction(cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var failed []FieldError
	for _, r := range rules {
		if err := r.apply(cmd, tx); err != nil {
			failed = append(failed, FieldError{Field: r.field, Err: err.(*RuleError)})
		}
	}
	if len(failed) > 0 {
		return nil, &InvalidInputError{Fields: failed}
	}
	return tx, nil
}
