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
// USE CASE — RETURN
// ======================================================

type Return struct {
	repo domain.Repository
	now  clock.Clock
}

func NewReturn(repo domain.Repository, now clock.Clock) *Return {
	if now == nil {
		now = clock.System
	}
	return &Return{repo: repo, now: now}
}

// Execute closes the caller's active borrowing, stores the late fine and
// puts the copy back on the shelf.
func (uc *Return) Execute(
	ctx context.Context,
	userID uint,
	borrowingID uint,
) (*models.Borrowing, error) {

	b, err := uc.repo.GetActiveBorrowing(ctx, borrowingID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("no_active_borrowing")
		}
		return nil, err
	}

	if err := domain.Return(b, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBorrowing(ctx, b); err != nil {
		return nil, err
	}

	if err := uc.repo.AdjustAvailableCopies(ctx, b.BookID, 1); err != nil {
		return nil, err
	}

	return b, nil
}
