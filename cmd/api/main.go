package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/SergioAyalaHernandez/ms-users-crediya/internal/api/http"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/api/http/handlers"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/auth"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/config"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/events"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/observability"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/persistence"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/repository"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/service"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	pool := pg.PoolHandle()
	if pool == nil {
		logger.Fatal("POSTGRES_DSN is required")
	}

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	tokens, err := auth.NewTokenManager([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		logger.Fatal("invalid signing key", zap.Error(err))
	}
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordMode, cfg.Auth.BcryptCost)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, metrics))

	userRepo := repository.NewCachedUserRepository(
		repository.NewUserRepository(pool),
		redis.Client,
		cfg.Redis.CacheTTL(),
		"users",
		logger,
	)

	userService := service.NewUserService(service.UserDependencies{
		UserRepo:     userRepo,
		SalaryBounds: service.SalaryBounds{Min: cfg.Users.MinSalary, Max: cfg.Users.MaxSalary},
		Hasher:       hasher,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:   userRepo,
		Tokens:     tokens,
		Hasher:     hasher,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	var redisPinger handlers.Pinger
	if redis.Client != nil {
		redisPinger = redis
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redisPinger),
		Users:          handlers.NewUsersHandler(userService),
		Auth:           handlers.NewAuthHandler(authService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
