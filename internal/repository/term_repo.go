package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-fees/internal/models"
)

// TermRepository provides access to fee terms.
type TermRepository interface {
	List(ctx context.Context) ([]models.Term, error)
	GetByID(ctx context.Context, id uint) (models.Term, error)
	Create(ctx context.Context, term *models.Term) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type termRepository struct {
	db *gorm.DB
}

// NewTermRepository constructs a term repository.
func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepository{db: db}
}

func (r *termRepository) List(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&terms).Error; err != nil {
		return nil, err
	}

	return terms, nil
}

func (r *termRepository) GetByID(ctx context.Context, id uint) (models.Term, error) {
	var term models.Term
	if err := r.db.WithContext(ctx).First(&term, id).Error; err != nil {
		return models.Term{}, err
	}

	return term, nil
}

func (r *termRepository) Create(ctx context.Context, term *models.Term) error {
	return translateError(r.db.WithContext(ctx).Create(term).Error)
}

// Update overwrites the given columns; an unknown id matches no rows and is not an error.
func (r *termRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&models.Term{}).
		Where("id = ?", id).
		Updates(updates).Error
	return translateError(err)
}

func (r *termRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Term{}, id).Error
}
