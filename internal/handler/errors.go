package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-fees/internal/utils"
)

// ErrorHandler renders error pages for the HTML routes and the JSON envelope
// for /api routes.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	logger = logger.With().Str("component", "error_handler").Logger()

	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Something went wrong. Please try again."

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			requestLogger(logger, c).Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return utils.SendError(c, code, strings.ToLower(message))
		}

		if code == fiber.StatusNotFound {
			if message == "Cannot "+c.Method()+" "+c.Path() || message == "Not Found" {
				message = "The page you requested does not exist."
			}
			return c.Status(code).Render("404", fiber.Map{
				"Title":   "Not found",
				"Message": message,
			})
		}

		return c.Status(code).Render("error", fiber.Map{
			"Title":      "Error",
			"ErrorTitle": utils.StatusText(code),
			"Message":    message,
		})
	}
}
