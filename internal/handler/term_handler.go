package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-fees/internal/dto"
	"github.com/noah-isme/school-fees/internal/service"
)

// TermHandler serves the fee term pages.
type TermHandler struct {
	service service.TermService
	flash   *Flash
	logger  zerolog.Logger
}

// NewTermHandler constructs the handler.
func NewTermHandler(service service.TermService, flash *Flash, logger zerolog.Logger) *TermHandler {
	return &TermHandler{
		service: service,
		flash:   flash,
		logger:  logger.With().Str("component", "term_handler").Logger(),
	}
}

// Register attaches term routes to the router.
func (h *TermHandler) Register(router fiber.Router) {
	router.Get(termsPath, h.list)
	router.Post("/term/add", h.create)
	router.Post("/term/edit/:id", h.update)
	router.Post("/term/delete/:id", h.delete)
}

func (h *TermHandler) list(c *fiber.Ctx) error {
	terms, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list terms")
		return err
	}

	return h.flash.render(c, "terms", fiber.Map{
		"Title": "Terms",
		"Terms": terms,
	})
}

func (h *TermHandler) create(c *fiber.Ctx) error {
	var req dto.TermRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	_, err := h.service.Create(c.UserContext(), req)
	return h.flash.Redirect(c, h.logger, termsPath, err, "Term added successfully.")
}

func (h *TermHandler) update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.TermRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	err = h.service.Update(c.UserContext(), id, req)
	return h.flash.Redirect(c, h.logger, termsPath, err, "Term updated successfully.")
}

func (h *TermHandler) delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = h.service.Delete(c.UserContext(), id)
	return h.flash.Redirect(c, h.logger, termsPath, err, "Term deleted successfully.")
}
