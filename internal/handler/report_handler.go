package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-fees/internal/service"
	"github.com/noah-isme/school-fees/internal/utils"
)

// ReportHandler serves the outstanding balance report and payment receipts.
type ReportHandler struct {
	reports  service.ReportService
	receipts service.ReceiptService
	flash    *Flash
	logger   zerolog.Logger
}

// NewReportHandler constructs the handler.
func NewReportHandler(reports service.ReportService, receipts service.ReceiptService, flash *Flash, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		reports:  reports,
		receipts: receipts,
		flash:    flash,
		logger:   logger.With().Str("component", "report_handler").Logger(),
	}
}

// Register attaches the HTML report and receipt pages.
func (h *ReportHandler) Register(router fiber.Router) {
	router.Get("/reports/outstanding_balance", h.outstandingBalance)
	router.Get("/receipt/:payment_id", h.receipt)
}

// RegisterAPI attaches the JSON variants under an API group.
func (h *ReportHandler) RegisterAPI(router fiber.Router) {
	router.Get("/reports/outstanding-balance", h.outstandingBalanceJSON)
	router.Get("/receipts/:payment_id", h.receiptJSON)
}

func (h *ReportHandler) outstandingBalance(c *fiber.Ctx) error {
	report, err := h.reports.OutstandingBalance(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build outstanding balance report")
		return err
	}

	return h.flash.render(c, "outstanding_balance", fiber.Map{
		"Title":  "Outstanding balances",
		"Report": report,
	})
}

func (h *ReportHandler) receipt(c *fiber.Ctx) error {
	id, err := pathID(c, "payment_id")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Receipt not found")
	}

	receipt, err := h.receipts.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Receipt not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("payment_id", id).Msg("failed to load receipt")
		return err
	}

	return c.Render("receipt", fiber.Map{
		"Title":   "Receipt",
		"Receipt": receipt,
	})
}

func (h *ReportHandler) outstandingBalanceJSON(c *fiber.Ctx) error {
	report, err := h.reports.OutstandingBalance(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build outstanding balance report")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build report")
	}

	return utils.SendSuccess(c, "outstanding balances retrieved", report)
}

func (h *ReportHandler) receiptJSON(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "payment_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	receipt, err := h.receipts.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "receipt not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("payment_id", id).Msg("failed to load receipt")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load receipt")
	}

	return utils.SendSuccess(c, "receipt retrieved", receipt)
}
