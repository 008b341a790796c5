package repository

import (
	"context"
	"fmt"

	"github.com/eaglebank/financeiro/internal/database"
	"github.com/eaglebank/financeiro/internal/models"
)

// TransactionReadRepository reads straight from the store; nothing is cached
// between calls.
type TransactionReadRepository struct {
	db *database.DB
}

func NewTransactionReadRepository(db *database.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// List returns every transaction in insertion order. An empty table yields an
// empty, non-nil slice.
func (r *TransactionReadRepository) List(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT id, cpf, tipo, valor, descricao
		FROM transacoes
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.CPF, &t.Tipo, &t.Valor, &t.Descricao); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Count returns the number of stored transactions.
func (r *TransactionReadRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transacoes").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}
