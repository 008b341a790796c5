package command

import (
	"context"

	"github.com/eaglebank/financeiro/internal/cqrs"
	"github.com/eaglebank/financeiro/internal/events"
	"github.com/eaglebank/financeiro/internal/models"
	"github.com/eaglebank/financeiro/internal/validation"
	"github.com/sirupsen/logrus"
)

type TransactionWriter interface {
	Create(ctx context.Context, transaction *models.Transaction) error
}

type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// TransactionCommandService creates transactions. Every field rule runs before
// the store is touched; a rejected command never writes.
type TransactionCommandService struct {
	writeRepo TransactionWriter
	publisher EventPublisher
	log       *logrus.Logger
}

// NewTransactionCommandService wires the service. publisher may be nil, in
// which case no events are emitted.
func NewTransactionCommandService(writeRepo TransactionWriter, publisher EventPublisher, log *logrus.Logger) *TransactionCommandService {
	return &TransactionCommandService{
		writeRepo: writeRepo,
		publisher: publisher,
		log:       log,
	}
}

func (s *TransactionCommandService) CreateTransaction(ctx context.Context, cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
	transaction, err := validation.Transaction(cmd)
	if err != nil {
		return nil, err
	}
	if err := s.writeRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"transactionId": transaction.ID,
		"tipo":          transaction.Tipo,
		"valor":         transaction.Valor,
	}).Info("transaction registered")

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
			TransactionID: transaction.ID,
			CPF:           transaction.CPF,
			Tipo:          transaction.Tipo,
			Valor:         transaction.Valor,
		}); err != nil {
			s.log.WithError(err).WithField("transactionId", transaction.ID).Warn("failed to publish transaction.created event")
		}
	}
	return transaction, nil
}
