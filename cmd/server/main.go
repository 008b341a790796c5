package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/eaglebank/financeiro/internal/command"
	"github.com/eaglebank/financeiro/internal/config"
	"github.com/eaglebank/financeiro/internal/database"
	"github.com/eaglebank/financeiro/internal/events"
	"github.com/eaglebank/financeiro/internal/handler"
	"github.com/eaglebank/financeiro/internal/logger"
	"github.com/eaglebank/financeiro/internal/middleware"
	"github.com/eaglebank/financeiro/internal/query"
	redisClient "github.com/eaglebank/financeiro/internal/redis"
	"github.com/eaglebank/financeiro/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const eventStreamMaxLen = 100_000

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database connection
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Optional event stream
	var publisher command.EventPublisher
	if cfg.RedisAddr != "" {
		redis, err := redisClient.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client, eventStreamMaxLen)
	}

	writeRepo := repository.NewTransactionWriteRepository(db)
	readRepo := repository.NewTransactionReadRepository(db)

	commandSvc := command.NewTransactionCommandService(writeRepo, publisher, log)
	querySvc := query.NewTransactionQueryService(readRepo)

	transactionHandler := handler.NewTransactionHandler(commandSvc, querySvc, log)

	// Setup router
	gin.SetMode(cfg.GinMode)
	routerOpts := handler.RouterOptions{TrustedProxies: cfg.TrustedProxies}
	if cfg.RateLimitRPS > 0 {
		routerOpts.Limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 15*time.Minute)
		routerOpts.Limiter.StartJanitor(ctx, 2*time.Minute)
	}
	router, err := handler.NewRouter(transactionHandler, log, routerOpts)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "driver": db.Driver}).Info("Transaction service starting")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Graceful shutdown failed")
		}
	}
}
