package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"

	"diaryapi/internal/http/middleware"
	"diaryapi/internal/service"
	"diaryapi/internal/validation"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(middleware.RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string, fields ...validation.FieldError) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Fields:  fields,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps the service error taxonomy onto HTTP responses.
// Unexpected errors are logged and answered with a generic 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", nf.Resource+" not found")
	}

	var bad *service.BadInputError
	if errors.As(err, &bad) {
		return writeError(c, fiber.StatusBadRequest, "BAD_INPUT", "invalid "+bad.Field, bad.Fields...)
	}

	zerolog.Ctx(c.UserContext()).Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusInternalServerError:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		default:
			code, message := statusError(status)
			return writeError(c, status, code, message)
		}
	}
}

// statusError derives an error code and message from the status text,
// e.g. 413 becomes REQUEST_ENTITY_TOO_LARGE.
func statusError(status int) (code, message string) {
	text := utils.StatusMessage(status)
	if text == "" {
		if status >= fiber.StatusInternalServerError {
			return "INTERNAL_ERROR", "internal server error"
		}
		return "CLIENT_ERROR", "client error"
	}
	code = strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
	return code, strings.ToLower(text)
}
