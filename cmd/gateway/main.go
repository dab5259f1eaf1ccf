package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/civicgrid/complaints-platform/internal/api/http"
	"github.com/civicgrid/complaints-platform/internal/config"
	"github.com/civicgrid/complaints-platform/internal/gateway"
	"github.com/civicgrid/complaints-platform/internal/hub"
	"github.com/civicgrid/complaints-platform/internal/observability"
	"github.com/civicgrid/complaints-platform/internal/relay"
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

	forwarder, err := relay.NewForwarder(cfg.Webhook.URL, logger)
	if err != nil {
		logger.Fatal("failed to build webhook forwarder", zap.Error(err))
	}

	clients := hub.NewHub(logger)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics)
	gateway.RegisterRoutes(app, gateway.RouteConfig{
		Hub:          clients,
		Forwarder:    forwarder,
		Logger:       logger,
		StaticDir:    cfg.Gateway.StaticDir,
		TemplatesDir: cfg.Gateway.TemplatesDir,
	})

	go func() {
		if err := app.Listen(cfg.Gateway.Addr()); err != nil {
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
