package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mensagem": "Sistema financeiro seguro"})
}

// Status reports liveness only; it never touches the store.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "API financeira ativa"})
}

// RegisterRoutes mounts the public API on r.
func RegisterRoutes(r gin.IRouter, h *TransactionHandler) {
	r.GET("/", Home)
	r.GET("/status", Status)

	transacoes := r.Group("/transacoes")
	{
		transacoes.POST("", h.CreateTransaction)
		transacoes.GET("", h.ListTransactions)
	}
}
