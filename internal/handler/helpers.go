package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-fees/internal/middleware"
	"github.com/noah-isme/school-fees/internal/service"
)

// Paths of the list pages that mutations redirect back to.
const (
	studentsPath = "/students"
	termsPath    = "/terms"
	paymentsPath = "/payments"
)

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value := c.Params(name)
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid identifier")
	}
	return uint(parsed), nil
}

// pathID parses an :id segment. Anything but an unsigned integer is a missing page.
func pathID(c *fiber.Ctx, name string) (uint, error) {
	id, err := parseUintParam(c, name)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

// userMessage turns a service outcome into the status line shown on the next
// page. ok is false for failures that are not the user's to fix.
func userMessage(err error, success string) (message string, ok bool) {
	var validationErr *service.ValidationError
	switch {
	case err == nil:
		return success, true
	case errors.Is(err, service.ErrDuplicateAdmissionNo):
		return "Admission number must be unique.", true
	case errors.Is(err, service.ErrDuplicateTermName):
		return "Term name must be unique.", true
	case errors.Is(err, service.ErrStudentNotFound):
		return "Student not found.", true
	case errors.Is(err, service.ErrTermNotFound):
		return "Term not found.", true
	case errors.As(err, &validationErr):
		return validationErr.Message, true
	case service.IsValidationError(err):
		return "Please check the submitted values.", true
	default:
		return "", false
	}
}
