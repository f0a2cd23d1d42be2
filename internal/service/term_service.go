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

	"github.com/noah-isme/school-fees/internal/dto"
	"github.com/noah-isme/school-fees/internal/models"
	"github.com/noah-isme/school-fees/internal/observability"
	"github.com/noah-isme/school-fees/internal/repository"
)

// TermService manages fee terms.
type TermService interface {
	List(ctx context.Context) ([]models.Term, error)
	Create(ctx context.Context, req dto.TermRequest) (models.Term, error)
	Update(ctx context.Context, id uint, req dto.TermRequest) error
	Delete(ctx context.Context, id uint) error
}

type termService struct {
	repo      repository.TermRepository
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewTermService constructs the term service.
func NewTermService(repo repository.TermRepository, validator *validator.Validate, logger zerolog.Logger) TermService {
	return &termService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "term_service").Logger(),
		tracer:    otel.Tracer(tracerPrefix + "term"),
	}
}

func (s *termService) List(ctx context.Context) ([]models.Term, error) {
	return s.repo.List(ctx)
}

func (s *termService) Create(ctx context.Context, req dto.TermRequest) (models.Term, error) {
	ctx, span := s.tracer.Start(ctx, "term.create")
	defer span.End()

	name, amount, err := s.parse(req)
	if err != nil {
		span.SetStatus(codes.Error, "validation failed")
		observability.RecordMutation("term", "create", err)
		return models.Term{}, err
	}

	term := models.Term{Name: name, Amount: amount}
	if err := s.repo.Create(ctx, &term); err != nil {
		observability.RecordMutation("term", "create", err)
		if errors.Is(err, repository.ErrDuplicate) {
			span.SetStatus(codes.Error, "duplicate term name")
			return models.Term{}, ErrDuplicateTermName
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return models.Term{}, err
	}

	span.SetAttributes(attribute.Int64("term.id", int64(term.ID)))
	observability.RecordMutation("term", "create", nil)
	s.logger.Info().Uint("term_id", term.ID).Str("name", term.Name).Float64("amount", term.Amount).Msg("term added")

	return term, nil
}

// Update overwrites name and amount. An unknown id changes nothing and is not an error.
func (s *termService) Update(ctx context.Context, id uint, req dto.TermRequest) error {
	ctx, span := s.tracer.Start(ctx, "term.update", trace.WithAttributes(attribute.Int64("term.id", int64(id))))
	defer span.End()

	name, amount, err := s.parse(req)
	if err != nil {
		span.SetStatus(codes.Error, "validation failed")
		observability.RecordMutation("term", "update", err)
		return err
	}

	err = s.repo.Update(ctx, id, map[string]interface{}{
		"name":   name,
		"amount": amount,
	})
	observability.RecordMutation("term", "update", err)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			span.SetStatus(codes.Error, "duplicate term name")
			return ErrDuplicateTermName
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return err
	}

	return nil
}

// Delete removes the term. Payments recorded against it are kept but stop
// counting towards balances.
func (s *termService) Delete(ctx context.Context, id uint) error {
	ctx, span := s.tracer.Start(ctx, "term.delete", trace.WithAttributes(attribute.Int64("term.id", int64(id))))
	defer span.End()

	err := s.repo.Delete(ctx, id)
	observability.RecordMutation("term", "delete", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return err
	}

	s.logger.Info().Uint("term_id", id).Msg("term deleted")
	return nil
}

func (s *termService) parse(req dto.TermRequest) (string, float64, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return "", 0, newValidationError("Term name and amount are required.", err)
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return "", 0, newValidationError("Amount must be a number.", err)
	}
	if amount < 0 {
		return "", 0, newValidationError("Amount cannot be negative.", nil)
	}

	return req.Name, roundCents(amount), nil
}
