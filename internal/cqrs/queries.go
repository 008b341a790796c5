package cqrs

// ListTransactionsQuery fetches every stored transaction in insertion order.
type ListTransactionsQuery struct{}
