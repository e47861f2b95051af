package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/gobank/internal/adapter/http"
	"github.com/iho/gobank/internal/adapter/http/handler"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/adapter/repository/memory"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	// Initialize metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize the in-memory registry
	store := memory.NewStore()
	clientRepo := memory.NewClientRepository(store)
	accountRepo := memory.NewAccountRepository(store)
	idGen := memory.NewULIDGenerator()

	// Initialize use cases
	limits := domain.AccountConfig{
		WithdrawCeiling: cfg.CheckingWithdrawCeiling,
		MaxWithdrawals:  cfg.CheckingMaxWithdrawals,
		Overdraft:       cfg.SavingsOverdraft,
	}
	clientUC := usecase.NewClientUseCase(clientRepo, idGen, cfg.DailyTransactionLimit, m)
	accountUC := usecase.NewAccountUseCase(clientRepo, accountRepo, limits, m)
	transactionUC := usecase.NewTransactionUseCase(accountRepo, m)
	statementUC := usecase.NewStatementUseCase(accountRepo, m)

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientUC)
	accountHandler := handler.NewAccountHandler(accountUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC)
	statementHandler := handler.NewStatementHandler(statementUC)
	healthHandler := handler.NewHealthHandler()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ClientHandler:      clientHandler,
		AccountHandler:     accountHandler,
		TransactionHandler: transactionHandler,
		StatementHandler:   statementHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
