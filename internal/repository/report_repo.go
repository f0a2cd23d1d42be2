package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-fees/internal/models"
)

// Every student owes the sum of all terms. Payments only count while their
// term exists, which excludes payments left behind by a deleted term.
const outstandingBalanceQuery = `
SELECT balances.student_id, balances.name, balances.admission_no, balances.form,
	balances.total_due, balances.total_paid,
	balances.total_due - balances.total_paid AS outstanding
FROM (
	SELECT students.id AS student_id, students.name, students.admission_no, students.form,
		(SELECT COALESCE(SUM(terms.amount), 0) FROM terms) AS total_due,
		(SELECT COALESCE(SUM(payments.amount_paid), 0)
			FROM payments
			JOIN terms ON terms.id = payments.term_id
			WHERE payments.student_id = students.id) AS total_paid
	FROM students
) AS balances
WHERE balances.total_due - balances.total_paid > 0
ORDER BY outstanding DESC, balances.student_id ASC`

// ReportRepository runs read-only aggregations over the fee ledger.
type ReportRepository interface {
	OutstandingBalances(ctx context.Context) ([]models.StudentBalance, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository constructs a report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) OutstandingBalances(ctx context.Context) ([]models.StudentBalance, error) {
	var rows []models.StudentBalance
	if err := r.db.WithContext(ctx).Raw(outstandingBalanceQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
