package handlers

import (
	"loandesk/internal/adapters/persistence/jsonstore"
	"loandesk/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	staff *jsonstore.StaffStore
	loans *jsonstore.LoanStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(staff *jsonstore.StaffStore, loans *jsonstore.LoanStore) *HealthHandler {
	return &HealthHandler{staff: staff, loans: loans}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "loandesk API is running",
		"mode":    config.AppConfig.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API health and dataset sizes
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":   "healthy",
			"staff": h.staff.Count(),
			"loans": h.loans.Count(),
		},
	})
}
