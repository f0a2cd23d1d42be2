package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/school-fees/internal/dto"
	"github.com/noah-isme/school-fees/internal/repository"
)

// ReceiptTimeLayout formats the moment a receipt was rendered.
const ReceiptTimeLayout = "2006-01-02 15:04:05"

// ReceiptService builds printable payment receipts.
type ReceiptService interface {
	Get(ctx context.Context, paymentID uint) (dto.ReceiptResponse, error)
}

type receiptService struct {
	payments repository.PaymentRepository
	logger   zerolog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// NewReceiptService constructs the receipt service.
func NewReceiptService(payments repository.PaymentRepository, logger zerolog.Logger) ReceiptService {
	return &receiptService{
		payments: payments,
		logger:   logger.With().Str("component", "receipt_service").Logger(),
		tracer:   otel.Tracer(tracerPrefix + "receipt"),
		now:      time.Now,
	}
}

func (s *receiptService) Get(ctx context.Context, paymentID uint) (dto.ReceiptResponse, error) {
	ctx, span := s.tracer.Start(ctx, "receipt.get", trace.WithAttributes(attribute.Int64("payment.id", int64(paymentID))))
	defer span.End()

	record, err := s.payments.GetReceipt(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "payment not found")
			return dto.ReceiptResponse{}, ErrPaymentNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return dto.ReceiptResponse{}, err
	}

	paid, err := s.payments.SumForTerm(ctx, record.StudentID, record.TermID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "term total failed")
		return dto.ReceiptResponse{}, err
	}

	return dto.ReceiptResponse{
		PaymentID:     record.PaymentID,
		StudentName:   record.StudentName,
		AdmissionNo:   record.AdmissionNo,
		Form:          record.Form,
		TermName:      record.TermName,
		TermAmount:    roundCents(record.TermAmount),
		AmountPaid:    roundCents(record.AmountPaid),
		PaymentDate:   record.PaymentDate,
		TermPaidTotal: roundCents(paid),
		TermBalance:   roundCents(record.TermAmount - paid),
		CurrentTime:   s.now().Format(ReceiptTimeLayout),
	}, nil
}
