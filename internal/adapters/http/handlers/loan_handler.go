package handlers

import (
	"errors"
	"net/url"
	"time"

	"loandesk/internal/adapters/http/middleware"
	"loandesk/internal/core/domain"
	"loandesk/internal/core/services"
	"loandesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// List returns all loans, optionally filtered by status
// @Summary List loans
// @Description List loans with an optional exact status filter
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Exact status match"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "You are not logged in. Please log in to get access")
	}

	loans := h.loanService.List(c.Context(), c.Query("status"))
	shaped := services.Shape(loans, identity.Role)

	return response.List(c, len(shaped), fiber.Map{
		"loans": shaped,
	})
}

// Expired returns loans past their maturity date
// @Summary List expired loans
// @Description List loans whose maturity date is before now
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/expired-loans [get]
func (h *LoanHandler) Expired(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "You are not logged in. Please log in to get access")
	}

	loans := h.loanService.Expired(c.Context(), time.Now())
	shaped := services.Shape(loans, identity.Role)

	return response.List(c, len(shaped), fiber.Map{
		"loans": shaped,
	})
}

// ByUser returns loans for one applicant email
// @Summary List loans by applicant
// @Description List loans for an applicant email, matched case-insensitively
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userEmail path string true "Applicant email"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/user-loans/{userEmail} [get]
func (h *LoanHandler) ByUser(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "You are not logged in. Please log in to get access")
	}

	email, err := url.PathUnescape(c.Params("userEmail"))
	if err != nil {
		email = c.Params("userEmail")
	}

	loans := h.loanService.ByApplicant(c.Context(), email)
	shaped := services.Shape(loans, identity.Role)

	return response.List(c, len(shaped), fiber.Map{
		"loans": shaped,
	})
}

// Delete acknowledges deletion of a loan (superAdmin only)
// @Summary Delete loan
// @Description Acknowledge deletion of a loan by id
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param loanId path int true "Loan ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/loans/{loanId} [delete]
func (h *LoanHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("loanId")
	if err != nil {
		return response.NotFound(c, "Loan not found")
	}

	if err := h.loanService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			return response.NotFound(c, "Loan not found")
		}
		return response.InternalServerError(c, "Failed to delete loan")
	}

	return response.Success(c, "Loan deleted successfully", nil)
}
