package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-fees/internal/models"
)

// PaymentRepository persists payments and serves their joined read models.
type PaymentRepository interface {
	ListDetailed(ctx context.Context) ([]models.PaymentDetail, error)
	Create(ctx context.Context, payment *models.Payment) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	GetReceipt(ctx context.Context, id uint) (models.ReceiptRecord, error)
	SumForTerm(ctx context.Context, studentID, termID uint) (float64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository constructs a payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// ListDetailed returns payments whose student and term still exist, newest first.
func (r *paymentRepository) ListDetailed(ctx context.Context) ([]models.PaymentDetail, error) {
	var rows []models.PaymentDetail
	err := r.db.WithContext(ctx).
		Table("payments").
		Select(`payments.id, payments.student_id, payments.term_id,
			students.name AS student_name, students.admission_no,
			terms.name AS term_name, payments.amount_paid, payments.payment_date`).
		Joins("JOIN students ON students.id = payments.student_id").
		Joins("JOIN terms ON terms.id = payments.term_id").
		Order("payments.payment_date DESC").
		Order("payments.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *paymentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Payment{}, id).Error
}

func (r *paymentRepository) GetReceipt(ctx context.Context, id uint) (models.ReceiptRecord, error) {
	var record models.ReceiptRecord
	result := r.db.WithContext(ctx).
		Table("payments").
		Select(`payments.id AS payment_id, students.id AS student_id, students.name AS student_name,
			students.admission_no, students.form, terms.id AS term_id, terms.name AS term_name,
			terms.amount AS term_amount, payments.amount_paid, payments.payment_date`).
		Joins("JOIN students ON students.id = payments.student_id").
		Joins("JOIN terms ON terms.id = payments.term_id").
		Where("payments.id = ?", id).
		Limit(1).
		Scan(&record)
	if result.Error != nil {
		return models.ReceiptRecord{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ReceiptRecord{}, gorm.ErrRecordNotFound
	}

	return record, nil
}

func (r *paymentRepository) SumForTerm(ctx context.Context, studentID, termID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Where("student_id = ? AND term_id = ?", studentID, termID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
