package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"debtpilot/internal/cache"
	"debtpilot/internal/config"
	"debtpilot/internal/database"
	"debtpilot/internal/llm"
	"debtpilot/internal/logger"
	"debtpilot/internal/payoff"
	"debtpilot/internal/scheduler"
	"debtpilot/internal/services"
	"debtpilot/internal/validator"

	_ "debtpilot/internal/docs" // Import swagger docs
)

// @title           DebtPilot API
// @version         1.0
// @description     DebtPilot ranks a user's debts, projects payoff timelines and keeps a repayment strategy up to date.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Strategy engine
	aiCache := newCache(ctx, appConfig, log)
	defer closeCache(aiCache, log)
	generator, err := llm.New(appConfig, aiCache, log)
	if err != nil {
		return fmt.Errorf("failed to configure text generation: %w", err)
	}
	optimizer := payoff.NewOptimizer(generator,
		payoff.WithWeights(payoff.Weights{
			InterestRate: appConfig.Weights.InterestRate,
			Balance:      appConfig.Weights.Balance,
			PayoffTime:   appConfig.Weights.PayoffTime,
			Utilization:  appConfig.Weights.Utilization,
		}),
		payoff.WithTimeout(appConfig.LLMTimeout),
		payoff.WithLogger(log),
	)
	narrator := payoff.NewNarrator(nil)

	// Initialize services
	db := dbManager.DB()
	debtService := services.NewDebtService(db)
	paymentService := services.NewPaymentService(db, debtService)
	strategyService := services.NewStrategyService(db)
	plannerService := services.NewPlannerService(debtService, strategyService, optimizer, narrator)
	auditService := services.NewAuditService(db)

	// Strategy review job
	reviewer := scheduler.New(ctx, strategyService, plannerService, log)
	if err := reviewer.Schedule(appConfig.StrategyReviewSchedule); err != nil {
		return fmt.Errorf("invalid STRATEGY_REVIEW_SCHEDULE %q: %w", appConfig.StrategyReviewSchedule, err)
	}
	reviewer.Start()
	defer reviewer.Stop()

	router := newRouter(routerDeps{
		JWTSecret:      appConfig.JWTSecret,
		InternalAPIKey: appConfig.InternalAPIKey,
		Debts:          debtService,
		Payments:       paymentService,
		Strategies:     strategyService,
		Planner:        plannerService,
		Audit:          auditService,
		Reviewer:       reviewer,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting DebtPilot server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// newCache returns a Redis cache when REDIS_ADDR is set and reachable, and
// an in-process cache otherwise.
func newCache(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache()
	}

	redisCache := cache.NewRedisCache(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Warnw("redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		_ = redisCache.Close()
		return cache.NewMemoryCache()
	}
	return redisCache
}

// closeCache releases the cache's connections, if it holds any.
func closeCache(c cache.Cache, log *zap.SugaredLogger) {
	closer, ok := c.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		log.Warnf("cache close error: %v", err)
	}
}
