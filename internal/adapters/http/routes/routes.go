package routes

import (
	"fmt"

	"loandesk/internal/adapters/http/handlers"
	"loandesk/internal/adapters/http/middleware"
	"loandesk/internal/adapters/persistence/jsonstore"
	"loandesk/internal/config"
	"loandesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, staffStore *jsonstore.StaffStore, loanStore *jsonstore.LoanStore, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(staffStore, cfg)
	loanService := services.NewLoanService(loanStore)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(staffStore, loanStore)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api", middleware.NoStore())

	// Auth routes (public)
	api.Post("/login", middleware.LoginRateLimiter(), authHandler.Login)
	api.Post("/logout", authHandler.Logout)

	// Protected routes
	auth := middleware.AuthMiddleware(cfg)
	api.Get("/me", auth, authHandler.Me)
	api.Get("/loans", auth, loanHandler.List)
	api.Get("/expired-loans", auth, loanHandler.Expired)
	api.Get("/user-loans/:userEmail", auth, loanHandler.ByUser)
	api.Delete("/loans/:loanId", auth, middleware.SuperAdminOnly(), loanHandler.Delete)

	// Catch-all for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": fmt.Sprintf("Route %s not found", c.Path()),
		})
	})
}
