package middleware

import (
	"strings"

	"loandesk/internal/config"
	"loandesk/internal/core/domain"
	"loandesk/internal/pkg/jwt"
	"loandesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// identityKey is the request-scoped context key the verified identity
// is bound under. The identity lives for one request only.
const identityKey = "auth_identity"

// CookieName is the session token cookie.
const CookieName = "token"

// AuthMiddleware creates authentication middleware. It extracts the
// session token from the cookie first, then falls back to the
// Authorization bearer header, verifies it, and binds the decoded
// identity to the request context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		// 1. Try to get token from cookie first
		token = c.Cookies(CookieName)

		// 2. If not in cookie, try Authorization header
		if token == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if token == "" {
			return response.Unauthorized(c, "You are not logged in. Please log in to get access")
		}

		// 4. Verify token
		identity, err := jwt.Verify(token, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Invalid token. Token has expired")
			}
			return response.Unauthorized(c, "Invalid token. Please log in again")
		}

		// 5. Bind identity to the request context
		c.Locals(identityKey, *identity)

		return c.Next()
	}
}

// IdentityFromContext retrieves the identity bound by AuthMiddleware.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(domain.Identity)
	return identity, ok
}

// RoleMiddleware creates role-based authorization middleware. It must
// run after AuthMiddleware.
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return response.Unauthorized(c, "You are not logged in. Please log in to get access")
		}

		if !domain.RoleAllowed(identity.Role, allowedRoles...) {
			return response.Forbidden(c, "You do not have permission to perform this action")
		}

		return c.Next()
	}
}

// SuperAdminOnly middleware allows only the superAdmin role
func SuperAdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleSuperAdmin)
}
