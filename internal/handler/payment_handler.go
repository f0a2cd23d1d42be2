package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-fees/internal/dto"
	"github.com/noah-isme/school-fees/internal/service"
)

// PaymentHandler serves the payment ledger pages.
type PaymentHandler struct {
	service service.PaymentService
	flash   *Flash
	logger  zerolog.Logger
}

// NewPaymentHandler constructs the handler.
func NewPaymentHandler(service service.PaymentService, flash *Flash, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		flash:   flash,
		logger:  logger.With().Str("component", "payment_handler").Logger(),
	}
}

// Register attaches payment routes to the router.
func (h *PaymentHandler) Register(router fiber.Router) {
	router.Get(paymentsPath, h.list)
	router.Post("/add_payment", h.create)
	router.Post("/payment/edit/:id", h.update)
	router.Post("/payment/delete/:id", h.delete)
}

func (h *PaymentHandler) list(c *fiber.Ctx) error {
	page, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list payments")
		return err
	}

	return h.flash.render(c, "payments", fiber.Map{
		"Title":    "Payments",
		"Payments": page.Payments,
		"Students": page.Students,
		"Terms":    page.Terms,
	})
}

func (h *PaymentHandler) create(c *fiber.Ctx) error {
	var req dto.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	_, err := h.service.Create(c.UserContext(), req)
	return h.flash.Redirect(c, h.logger, paymentsPath, err, "Payment added successfully.")
}

func (h *PaymentHandler) update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	err = h.service.Update(c.UserContext(), id, req)
	return h.flash.Redirect(c, h.logger, paymentsPath, err, "Payment updated successfully.")
}

func (h *PaymentHandler) delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = h.service.Delete(c.UserContext(), id)
	return h.flash.Redirect(c, h.logger, paymentsPath, err, "Payment deleted successfully.")
}
