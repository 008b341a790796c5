package events

import "time"

const TransactionCreated = "transaction.created"

const TransactionEventsStream = "transaction.events"

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type TransactionCreatedEvent struct {
	TransactionID int64   `json:"transactionId"`
	CPF           string  `json:"cpf"`
	Tipo          string  `json:"tipo"`
	Valor         float64 `json:"valor"`
}
