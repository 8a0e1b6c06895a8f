package circulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/citylib/library-api/internal/clock"
	domain "github.com/citylib/library-api/internal/domain/circulation"
	"github.com/citylib/library-api/internal/httperr"
	"github.com/citylib/library-api/internal/models"
)

// ======================================================
// USE CASE — PAY FINE
// ======================================================

type PayFine struct {
	repo domain.Repository
	now  clock.Clock
}

func NewPayFine(repo domain.Repository, now clock.Clock) *PayFine {
	if now == nil {
		now = clock.System
	}
	return &PayFine{repo: repo, now: now}
}

// Execute records a payment for the fine on one borrowing and zeroes it.
func (uc *PayFine) Execute(
	ctx context.Context,
	userID uint,
	borrowingID uint,
) (*models.Payment, error) {

	b, err := uc.repo.GetFinedBorrowing(ctx, borrowingID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("no_fine")
		}
		return nil, err
	}

	amount := b.Fine
	if err := domain.PayFine(b); err != nil {
		return nil, err
	}

	now := uc.now()
	payment := &models.Payment{
		UserID: userID,
		// Millisecond timestamp, same scheme as the historical data.
		// Uniqueness is not guaranteed.
		PaymentID:   fmt.Sprintf("P%d", now.UnixMilli()),
		Amount:      amount,
		Description: fmt.Sprintf("Late fine for borrowing %d", borrowingID),
		PaymentDate: now,
		Status:      "completed",
	}

	if err := uc.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBorrowing(ctx, b); err != nil {
		return nil, err
	}

	return payment, nil
}
