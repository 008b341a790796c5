package query

import (
	"context"

	"github.com/eaglebank/financeiro/internal/cqrs"
	"github.com/eaglebank/financeiro/internal/models"
)

type TransactionLister interface {
	List(ctx context.Context) ([]models.Transaction, error)
}

// TransactionQueryService serves transaction reads from the store.
type TransactionQueryService struct {
	readRepo TransactionLister
}

func NewTransactionQueryService(readRepo TransactionLister) *TransactionQueryService {
	return &TransactionQueryService{readRepo: readRepo}
}

// ListTransactions returns the whole table; there is no paging or filtering.
func (s *TransactionQueryService) ListTransactions(ctx context.Context, _ cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
	return s.readRepo.List(ctx)
}
