package circulation

import (
	"context"
	"errors"

	"github.com/citylib/library-api/internal/models"
)

// ErrNotFound is returned by lookups when no row matches. Anything else a
// repository returns is a real persistence failure.
var ErrNotFound = errors.New("not found")

type Repository interface {
	// -------- Book --------
	GetBookByBookID(
		ctx context.Context,
		bookID string,
	) (*models.Book, error)

	// AdjustAvailableCopies shifts available_copies by delta (+1 / -1).
	AdjustAvailableCopies(
		ctx context.Context,
		bookID string,
		delta int,
	) error

	// -------- Borrowing --------
	HasActiveBorrowing(
		ctx context.Context,
		userID uint,
		bookID string,
	) (bool, error)

	CreateBorrowing(
		ctx context.Context,
		b *models.Borrowing,
	) error

	GetActiveBorrowing(
		ctx context.Context,
		borrowingID uint,
		userID uint,
	) (*models.Borrowing, error)

	GetFinedBorrowing(
		ctx context.Context,
		borrowingID uint,
		userID uint,
	) (*models.Borrowing, error)

	UpdateBorrowing(
		ctx context.Context,
		b *models.Borrowing,
	) error

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error
}
