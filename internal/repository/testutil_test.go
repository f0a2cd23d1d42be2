package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/school-fees/internal/database"
	"github.com/noah-isme/school-fees/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Connect("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, admissionNo, name string) models.Student {
	t.Helper()
	student := models.Student{AdmissionNo: admissionNo, Name: name, Form: "Form 2"}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func seedTerm(t *testing.T, db *gorm.DB, name string, amount float64) models.Term {
	t.Helper()
	term := models.Term{Name: name, Amount: amount}
	require.NoError(t, db.Create(&term).Error)
	return term
}

func seedPayment(t *testing.T, db *gorm.DB, studentID, termID uint, amount float64, date string) models.Payment {
	t.Helper()
	payment := models.Payment{StudentID: studentID, TermID: termID, AmountPaid: amount, PaymentDate: date}
	require.NoError(t, db.Create(&payment).Error)
	return payment
}
