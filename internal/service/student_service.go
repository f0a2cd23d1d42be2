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

// StudentService manages the student register.
type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, req dto.StudentCreateRequest) (models.Student, error)
	Update(ctx context.Context, id uint, req dto.StudentUpdateRequest) error
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, validator *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "student_service").Logger(),
		tracer:    otel.Tracer(tracerPrefix + "student"),
	}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.List(ctx)
}

func (s *studentService) Create(ctx context.Context, req dto.StudentCreateRequest) (models.Student, error) {
	ctx, span := s.tracer.Start(ctx, "student.create")
	defer span.End()

	req.AdmissionNo = strings.TrimSpace(req.AdmissionNo)
	req.Name = strings.TrimSpace(req.Name)
	req.Form = strings.TrimSpace(req.Form)
	if err := s.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		observability.RecordMutation("student", "create", err)
		return models.Student{}, newValidationError("Admission number, name and form are required.", err)
	}

	student := models.Student{AdmissionNo: req.AdmissionNo, Name: req.Name, Form: req.Form}
	if err := s.repo.Create(ctx, &student); err != nil {
		observability.RecordMutation("student", "create", err)
		if errors.Is(err, repository.ErrDuplicate) {
			span.SetStatus(codes.Error, "duplicate admission number")
			return models.Student{}, ErrDuplicateAdmissionNo
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return models.Student{}, err
	}

	span.SetAttributes(attribute.Int64("student.id", int64(student.ID)))
	observability.RecordMutation("student", "create", nil)
	s.logger.Info().Uint("student_id", student.ID).Str("admission_no", student.AdmissionNo).Msg("student added")

	return student, nil
}

// Update overwrites name and form. An unknown id changes nothing and is not an error.
func (s *studentService) Update(ctx context.Context, id uint, req dto.StudentUpdateRequest) error {
	ctx, span := s.tracer.Start(ctx, "student.update", trace.WithAttributes(attribute.Int64("student.id", int64(id))))
	defer span.End()

	req.Name = strings.TrimSpace(req.Name)
	req.Form = strings.TrimSpace(req.Form)
	if err := s.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		observability.RecordMutation("student", "update", err)
		return newValidationError("Name and form are required.", err)
	}

	err := s.repo.Update(ctx, id, map[string]interface{}{
		"name": req.Name,
		"form": req.Form,
	})
	observability.RecordMutation("student", "update", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return err
	}

	return nil
}

// Delete removes the student. Payments recorded for the student are kept.
func (s *studentService) Delete(ctx context.Context, id uint) error {
	ctx, span := s.tracer.Start(ctx, "student.delete", trace.WithAttributes(attribute.Int64("student.id", int64(id))))
	defer span.End()

	err := s.repo.Delete(ctx, id)
	observability.RecordMutation("student", "delete", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return err
	}

	s.logger.Info().Uint("student_id", id).Msg("student deleted")
	return nil
}
