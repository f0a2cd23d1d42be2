package service

import (
	"fmt"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/school-fees/internal/database"
	"github.com/noah-isme/school-fees/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type testServices struct {
	db       *gorm.DB
	students StudentService
	terms    TermService
	payments PaymentService
	reports  ReportService
	receipts ReceiptService
}

func setupServices(t *testing.T) testServices {
	t.Helper()
	db, err := database.Connect("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	validate := validator.New(validator.WithRequiredStructEnabled())
	studentRepo := repository.NewStudentRepository(db)
	termRepo := repository.NewTermRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	return testServices{
		db:       db,
		students: NewStudentService(studentRepo, validate, testLogger()),
		terms:    NewTermService(termRepo, validate, testLogger()),
		payments: NewPaymentService(paymentRepo, studentRepo, termRepo, validate, testLogger()),
		reports:  NewReportService(repository.NewReportRepository(db), testLogger()),
		receipts: NewReceiptService(paymentRepo, testLogger()),
	}
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}

func requireValidationMessage(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, IsValidationError(err), "expected validation error, got %v", err)
	require.Equal(t, message, err.Error())
}
