package response

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Envelope represents a standard API response
type Envelope struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"statusCode,omitempty"`
	Message    string      `json:"message,omitempty"`
	Results    *int        `json:"results,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

var log = zap.NewNop()

// SetLogger installs the logger used for server-side failure logging.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Success sends a success response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// List sends a success response carrying a result count
func List(c *fiber.Ctx, results int, data interface{}) error {
	return c.JSON(Envelope{
		Status:  "success",
		Results: &results,
		Data:    data,
	})
}

// Error sends an error response and logs the failure server-side
func Error(c *fiber.Ctx, statusCode int, message string) error {
	entry := log.Warn
	if statusCode >= fiber.StatusInternalServerError {
		entry = log.Error
	}
	entry("request failed",
		zap.Int("status", statusCode),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("message", message),
	)

	return c.Status(statusCode).JSON(Envelope{
		Status:     "error",
		StatusCode: statusCode,
		Message:    message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
