package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/school-fees/internal/dto"
	"github.com/noah-isme/school-fees/internal/repository"
)

// ReportService produces read-only fee reports.
type ReportService interface {
	OutstandingBalance(ctx context.Context) (dto.OutstandingBalanceReport, error)
}

type reportService struct {
	repo   repository.ReportRepository
	logger zerolog.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewReportService constructs the report service.
func NewReportService(repo repository.ReportRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger.With().Str("component", "report_service").Logger(),
		tracer: otel.Tracer(tracerPrefix + "report"),
		now:    time.Now,
	}
}

// OutstandingBalance lists every student whose payments do not yet cover the
// sum of all term fees, largest balance first and then by student id.
func (s *reportService) OutstandingBalance(ctx context.Context) (dto.OutstandingBalanceReport, error) {
	ctx, span := s.tracer.Start(ctx, "report.outstanding_balance")
	defer span.End()

	rows, err := s.repo.OutstandingBalances(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregation failed")
		return dto.OutstandingBalanceReport{}, err
	}

	report := dto.OutstandingBalanceReport{
		Items:       make([]dto.OutstandingBalanceItem, 0, len(rows)),
		GeneratedAt: s.now(),
	}
	for _, row := range rows {
		outstanding := roundCents(row.Outstanding)
		// float sums can leave sub-cent residue on a settled account
		if outstanding <= 0 {
			continue
		}
		report.Items = append(report.Items, dto.OutstandingBalanceItem{
			StudentID:   row.StudentID,
			Name:        row.Name,
			AdmissionNo: row.AdmissionNo,
			Form:        row.Form,
			TotalDue:    roundCents(row.TotalDue),
			TotalPaid:   roundCents(row.TotalPaid),
			Outstanding: outstanding,
		})
		report.TotalOutstanding += outstanding
	}
	report.TotalOutstanding = roundCents(report.TotalOutstanding)

	span.SetAttributes(attribute.Int("report.students", len(report.Items)))
	s.logger.Debug().Int("students", len(report.Items)).Float64("total_outstanding", report.TotalOutstanding).Msg("outstanding balance report generated")

	return report, nil
}
