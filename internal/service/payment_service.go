package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/school-fees/internal/dto"
	"github.com/noah-isme/school-fees/internal/models"
	"github.com/noah-isme/school-fees/internal/observability"
	"github.com/noah-isme/school-fees/internal/repository"
)

// studentInputSeparator splits the "<id> - <name>" value of the student selector.
const studentInputSeparator = " - "

// PaymentService records fee payments.
type PaymentService interface {
	List(ctx context.Context) (dto.PaymentListResponse, error)
	Create(ctx context.Context, req dto.PaymentCreateRequest) (models.Payment, error)
	Update(ctx context.Context, id uint, req dto.PaymentUpdateRequest) error
	Delete(ctx context.Context, id uint) error
}

type paymentService struct {
	payments  repository.PaymentRepository
	students  repository.StudentRepository
	terms     repository.TermRepository
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// paymentFields holds the parsed and validated columns of a payment.
type paymentFields struct {
	StudentID   uint
	TermID      string `validate:"required"`
	AmountPaid  string `validate:"required"`
	PaymentDate string `validate:"required"`
}

// NewPaymentService constructs the payment service.
func NewPaymentService(payments repository.PaymentRepository, students repository.StudentRepository, terms repository.TermRepository, validator *validator.Validate, logger zerolog.Logger) PaymentService {
	return &paymentService{
		payments:  payments,
		students:  students,
		terms:     terms,
		validator: validator,
		logger:    logger.With().Str("component", "payment_service").Logger(),
		tracer:    otel.Tracer(tracerPrefix + "payment"),
	}
}

func (s *paymentService) List(ctx context.Context) (dto.PaymentListResponse, error) {
	payments, err := s.payments.ListDetailed(ctx)
	if err != nil {
		return dto.PaymentListResponse{}, err
	}
	students, err := s.students.List(ctx)
	if err != nil {
		return dto.PaymentListResponse{}, err
	}
	terms, err := s.terms.List(ctx)
	if err != nil {
		return dto.PaymentListResponse{}, err
	}

	return dto.PaymentListResponse{Payments: payments, Students: students, Terms: terms}, nil
}

// Create validates the form in a fixed order and stops at the first failure.
func (s *paymentService) Create(ctx context.Context, req dto.PaymentCreateRequest) (models.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "payment.create")
	defer span.End()

	studentID, err := parseStudentInput(req.StudentInput)
	if err != nil {
		span.SetStatus(codes.Error, "invalid student input")
		observability.RecordMutation("payment", "create", err)
		return models.Payment{}, err
	}

	payment, err := s.resolve(ctx, paymentFields{
		StudentID:   studentID,
		TermID:      strings.TrimSpace(req.TermID),
		AmountPaid:  strings.TrimSpace(req.AmountPaid),
		PaymentDate: strings.TrimSpace(req.PaymentDate),
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		observability.RecordMutation("payment", "create", err)
		return models.Payment{}, err
	}

	if err := s.payments.Create(ctx, &payment); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.RecordMutation("payment", "create", err)
		return models.Payment{}, err
	}

	span.SetAttributes(
		attribute.Int64("payment.id", int64(payment.ID)),
		attribute.Int64("payment.student_id", int64(payment.StudentID)),
		attribute.Int64("payment.term_id", int64(payment.TermID)),
	)
	observability.RecordMutation("payment", "create", nil)
	s.logger.Info().
		Uint("payment_id", payment.ID).
		Uint("student_id", payment.StudentID).
		Uint("term_id", payment.TermID).
		Float64("amount_paid", payment.AmountPaid).
		Msg("payment recorded")

	return payment, nil
}

// Update applies the same checks as Create, then overwrites every column. An
// unknown payment id changes nothing and is not an error.
func (s *paymentService) Update(ctx context.Context, id uint, req dto.PaymentUpdateRequest) error {
	ctx, span := s.tracer.Start(ctx, "payment.update", trace.WithAttributes(attribute.Int64("payment.id", int64(id))))
	defer span.End()

	studentID, err := parseID(req.StudentID)
	if err != nil {
		span.SetStatus(codes.Error, "invalid student id")
		observability.RecordMutation("payment", "update", err)
		if strings.TrimSpace(req.StudentID) == "" {
			return newValidationError("Please fill in all payment fields.", err)
		}
		return newValidationError("Student id must be a whole number.", err)
	}

	payment, err := s.resolve(ctx, paymentFields{
		StudentID:   studentID,
		TermID:      strings.TrimSpace(req.TermID),
		AmountPaid:  strings.TrimSpace(req.AmountPaid),
		PaymentDate: strings.TrimSpace(req.PaymentDate),
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		observability.RecordMutation("payment", "update", err)
		return err
	}

	err = s.payments.Update(ctx, id, map[string]interface{}{
		"student_id":   payment.StudentID,
		"term_id":      payment.TermID,
		"amount_paid":  payment.AmountPaid,
		"payment_date": payment.PaymentDate,
	})
	observability.RecordMutation("payment", "update", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return err
	}

	return nil
}

func (s *paymentService) Delete(ctx context.Context, id uint) error {
	ctx, span := s.tracer.Start(ctx, "payment.delete", trace.WithAttributes(attribute.Int64("payment.id", int64(id))))
	defer span.End()

	err := s.payments.Delete(ctx, id)
	observability.RecordMutation("payment", "delete", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return err
	}

	s.logger.Info().Uint("payment_id", id).Msg("payment deleted")
	return nil
}

// resolve checks presence, amount, date and then that the student and term exist.
func (s *paymentService) resolve(ctx context.Context, fields paymentFields) (models.Payment, error) {
	if err := s.validator.Struct(fields); err != nil {
		return models.Payment{}, newValidationError("Please fill in all payment fields.", err)
	}

	amount, err := parseAmount(fields.AmountPaid)
	if err != nil {
		return models.Payment{}, newValidationError("Amount paid must be a number.", err)
	}
	if amount <= 0 {
		return models.Payment{}, newValidationError("Amount paid must be greater than zero.", nil)
	}

	if err := s.validator.Var(fields.PaymentDate, "datetime="+models.PaymentDateLayout); err != nil {
		return models.Payment{}, newValidationError("Payment date must be in YYYY-MM-DD format.", err)
	}

	if _, err := s.students.GetByID(ctx, fields.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, ErrStudentNotFound
		}
		return models.Payment{}, err
	}

	termID, err := parseID(fields.TermID)
	if err != nil {
		return models.Payment{}, ErrTermNotFound
	}
	if _, err := s.terms.GetByID(ctx, termID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, ErrTermNotFound
		}
		return models.Payment{}, err
	}

	return models.Payment{
		StudentID:   fields.StudentID,
		TermID:      termID,
		AmountPaid:  roundCents(amount),
		PaymentDate: fields.PaymentDate,
	}, nil
}

// parseStudentInput extracts the student id from "<id> - <name>".
func parseStudentInput(input string) (uint, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, newValidationError("Student input is required.", nil)
	}

	token, _, found := strings.Cut(input, studentInputSeparator)
	if !found {
		return 0, newValidationError(invalidStudentInputMessage, nil)
	}

	id, err := parseID(token)
	if err != nil {
		return 0, newValidationError(invalidStudentInputMessage, err)
	}

	return id, nil
}

const invalidStudentInputMessage = "Invalid student input format. Use 'ID - Name', e.g. '123 - John Doe'."
