package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/citylib/library-api/internal/domain/circulation"
	"github.com/citylib/library-api/internal/models"
)

type CirculationGormRepository struct {
	db *gorm.DB
}

func NewCirculationGormRepository(db *gorm.DB) *CirculationGormRepository {
	return &CirculationGormRepository{db: db}
}

// --------------------------------------------------
// Book
// --------------------------------------------------

func (r *CirculationGormRepository) GetBookByBookID(
	ctx context.Context,
	bookID string,
) (*models.Book, error) {

	var book models.Book
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *CirculationGormRepository) AdjustAvailableCopies(
	ctx context.Context,
	bookID string,
	delta int,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("book_id = ?", bookID).
		UpdateColumn("available_copies", gorm.Expr("available_copies + ?", delta)).
		Error
}

// --------------------------------------------------
// Borrowing
// --------------------------------------------------

func (r *CirculationGormRepository) HasActiveBorrowing(
	ctx context.Context,
	userID uint,
	bookID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Borrowing{}).
		Where(
			"user_id = ? AND book_id = ? AND return_date IS NULL",
			userID, bookID,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *CirculationGormRepository) CreateBorrowing(
	ctx context.Context,
	b *models.Borrowing,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *CirculationGormRepository) GetActiveBorrowing(
	ctx context.Context,
	borrowingID uint,
	userID uint,
) (*models.Borrowing, error) {

	var b models.Borrowing
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND user_id = ? AND return_date IS NULL",
			borrowingID, userID,
		).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *CirculationGormRepository) GetFinedBorrowing(
	ctx context.Context,
	borrowingID uint,
	userID uint,
) (*models.Borrowing, error) {

	var b models.Borrowing
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND user_id = ? AND fine > 0",
			borrowingID, userID,
		).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *CirculationGormRepository) UpdateBorrowing(
	ctx context.Context,
	b *models.Borrowing,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *CirculationGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Compile-time check
var _ domain.Repository = (*CirculationGormRepository)(nil)
