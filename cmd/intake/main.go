package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/civicgrid/complaints-platform/internal/api/http"
	"github.com/civicgrid/complaints-platform/internal/api/http/handlers"
	"github.com/civicgrid/complaints-platform/internal/config"
	"github.com/civicgrid/complaints-platform/internal/mailer"
	"github.com/civicgrid/complaints-platform/internal/observability"
	"github.com/civicgrid/complaints-platform/internal/persistence"
	"github.com/civicgrid/complaints-platform/internal/ratelimit"
	"github.com/civicgrid/complaints-platform/internal/repository"
	"github.com/civicgrid/complaints-platform/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	if err := mongo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		limiter, err = ratelimit.NewRedisLimiter(redis.Client, cfg.RateLimit.PerMinute)
		if err != nil {
			logger.Fatal("failed to build rate limiter", zap.Error(err))
		}
	}

	complaintRepo := repository.NewComplaintRepository(mongo.Complaints())
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		ComplaintRepo: complaintRepo,
		Mailer:        smtpMailer,
		Logger:        logger,
	})

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(),
		Complaints: handlers.NewComplaintsHandler(complaintService),
		Limiter:    limiter,
		Logger:     logger,
	})

	go func() {
		if err := app.Listen(cfg.Intake.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
