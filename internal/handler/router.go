package handler

import (
	"fmt"

	"github.com/eaglebank/financeiro/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterOptions struct {
	// TrustedProxies may set X-Forwarded-For; nil trusts nobody, so the
	// client IP is always the socket peer.
	TrustedProxies []string
	// Limiter is optional.
	Limiter *middleware.RateLimiter
}

// NewRouter builds the engine with the standard middleware chain and routes.
func NewRouter(h *TransactionHandler, log *logrus.Logger, opts RouterOptions) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.LoggingMiddleware(log))
	if opts.Limiter != nil {
		router.Use(middleware.RateLimitMiddleware(opts.Limiter))
	}
	RegisterRoutes(router, h)
	return router, nil
}
