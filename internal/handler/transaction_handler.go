package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/eaglebank/financeiro/internal/cqrs"
	"github.com/eaglebank/financeiro/internal/middleware"
	"github.com/eaglebank/financeiro/internal/models"
	"github.com/eaglebank/financeiro/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

func init() {
	// Request bodies must match the schema exactly.
	binding.EnableDecoderDisallowUnknownFields = true
}

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	CreateTransaction(context.Context, cqrs.CreateTransactionCommand) (*models.Transaction, error)
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	ListTransactions(context.Context, cqrs.ListTransactionsQuery) ([]models.Transaction, error)
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
	log      *logrus.Logger
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier, log *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries, log: log}
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req models.TransactionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(c, middleware.DecodeErrors(err))
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	_, err := h.commands.CreateTransaction(c.Request.Context(), cqrs.CreateTransactionCommand{
		CPF:       *req.CPF,
		Tipo:      *req.Tipo,
		Valor:     req.Valor.Decimal,
		Descricao: *req.Descricao,
	})
	if err != nil {
		var invalid *validation.InvalidInputError
		if errors.As(err, &invalid) {
			middleware.RespondWithValidationError(c, ruleErrors(invalid))
			return
		}
		h.log.WithError(err).WithField("requestId", middleware.GetRequestID(c)).Error("failed to register transaction")
		middleware.RespondWithError(c, http.StatusInternalServerError, "Falha ao registrar transação")
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensagem": "Transação registrada com sucesso"})
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.queries.ListTransactions(c.Request.Context(), cqrs.ListTransactionsQuery{})
	if err != nil {
		h.log.WithError(err).WithField("requestId", middleware.GetRequestID(c)).Error("failed to list transactions")
		middleware.RespondWithError(c, http.StatusInternalServerError, "Falha ao listar transações")
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	c.JSON(http.StatusOK, transactions)
}

func ruleErrors(invalid *validation.InvalidInputError) []middleware.ValidationError {
	out := make([]middleware.ValidationError, len(invalid.Fields))
	for i, f := range invalid.Fields {
		out[i] = middleware.ValidationError{
			Field:   f.Field,
			Message: f.Err.Message,
			Type:    f.Err.Tag,
		}
	}
	return out
}
