package repository

import (
	"context"
	"fmt"

	"github.com/eaglebank/financeiro/internal/database"
	"github.com/eaglebank/financeiro/internal/models"
)

// TransactionWriteRepository handles all state-mutating operations for transactions.
// Rows are only ever inserted.
type TransactionWriteRepository struct {
	db *database.DB
}

func NewTransactionWriteRepository(db *database.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Create inserts the record in a single statement and sets transaction.ID to
// the id assigned by the store.
func (r *TransactionWriteRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	query := r.db.Rebind(`
		INSERT INTO transacoes (cpf, tipo, valor, descricao)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err := r.db.QueryRowContext(ctx, query,
		transaction.CPF, transaction.Tipo, transaction.Valor, transaction.Descricao,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}
