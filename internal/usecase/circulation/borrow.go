package circulation

import (
	"context"
	"errors"

	"github.com/citylib/library-api/internal/clock"
	domain "github.com/citylib/library-api/internal/domain/circulation"
	"github.com/citylib/library-api/internal/httperr"
	"github.com/citylib/library-api/internal/models"
)

// ======================================================
// USE CASE — BORROW
// ======================================================

type Borrow struct {
	repo domain.Repository
	now  clock.Clock
}

func NewBorrow(repo domain.Repository, now clock.Clock) *Borrow {
	if now == nil {
		now = clock.System
	}
	return &Borrow{repo: repo, now: now}
}

// Execute checks availability, opens the borrowing and decrements the
// available copies. The check and the two writes are not wrapped in a
// transaction; concurrent borrows of the last copy can both pass the
// availability check (known race, kept as documented behavior).
func (uc *Borrow) Execute(
	ctx context.Context,
	userID uint,
	bookID string,
) (*models.Borrowing, error) {

	book, err := uc.repo.GetBookByBookID(ctx, bookID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("book_not_available")
		}
		return nil, err
	}
	if book.AvailableCopies <= 0 {
		return nil, httperr.ErrBusiness("book_not_available")
	}

	active, err := uc.repo.HasActiveBorrowing(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, httperr.ErrBusiness("already_borrowed")
	}

	b := domain.NewBorrowing(userID, bookID, uc.now())

	if err := uc.repo.CreateBorrowing(ctx, b); err != nil {
		return nil, err
	}

	if err := uc.repo.AdjustAvailableCopies(ctx, bookID, -1); err != nil {
		return nil, err
	}

	return b, nil
}
