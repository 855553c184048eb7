package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "loandesk/docs"
	"loandesk/internal/adapters/http/middleware"
	"loandesk/internal/adapters/http/routes"
	"loandesk/internal/adapters/persistence/jsonstore"
	"loandesk/internal/config"
	"loandesk/internal/pkg/logger"
	"loandesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title loandesk API
// @version 1.0
// @description Role-gated loan records API with JWT session authentication.

// @host localhost:3000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Structured logger
	zlog, err := logger.New(cfg.Logger.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()
	response.SetLogger(zlog)

	// Load the read-only datasets
	staffStore, err := jsonstore.LoadStaff(cfg.Data.StaffFile)
	if err != nil {
		zlog.Fatal("failed to load staff dataset", zap.Error(err))
	}
	loanStore, err := jsonstore.LoadLoans(cfg.Data.LoanFile)
	if err != nil {
		zlog.Fatal("failed to load loan dataset", zap.Error(err))
	}
	zlog.Info("datasets loaded",
		zap.Int("staff", staffStore.Count()),
		zap.Int("loans", loanStore.Count()),
	)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "loandesk API v1.0",
		ErrorHandler: middleware.ErrorHandler(zlog),
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, staffStore, loanStore, cfg)

	// Graceful shutdown
	go gracefulShutdown(app, zlog)

	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("mode", cfg.AppMode),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, zlog *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Error("error during shutdown", zap.Error(err))
	}
}
