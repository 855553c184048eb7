package handlers

import (
	"errors"
	"strings"
	"time"

	"loandesk/internal/adapters/http/middleware"
	"loandesk/internal/config"
	"loandesk/internal/core/services"
	"loandesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles staff login
// @Summary Login
// @Description Authenticate staff and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Please provide email and password")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Please provide email and password")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Incorrect email or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	// Dual delivery: http-only cookie plus the token in the body, so
	// callers can use either channel going forward.
	h.setSessionCookie(c, result.Token)

	return response.Success(c, "Login successful", fiber.Map{
		"user":  result.User,
		"token": result.Token,
	})
}

// Logout handles staff logout
// @Summary Logout
// @Description Clear the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Clearing the cookie is all a stateless session allows; a bearer
	// copy held by the client stays valid until it expires.
	h.clearSessionCookie(c)

	return response.Success(c, "Logged out successfully", nil)
}

// Me returns the current identity
// @Summary Get current user
// @Description Return the authenticated identity decoded from the session token
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "You are not logged in. Please log in to get access")
	}

	return response.Success(c, "", fiber.Map{
		"user": identity,
	})
}

// setSessionCookie sets the session token cookie
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.JWT.TokenTTLMins * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearSessionCookie clears the session token cookie
func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
