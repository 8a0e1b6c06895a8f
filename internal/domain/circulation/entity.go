package circulation

import (
	"math"
	"time"

	"github.com/citylib/library-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// StatusOf derives the state of a borrowing from its return date.
func StatusOf(b *models.Borrowing) Status {
	if b.ReturnDate == nil {
		return StatusBorrowed
	}
	return StatusReturned
}

// NewBorrowing opens a loan due LoanPeriodDays from now.
func NewBorrowing(userID uint, bookID string, now time.Time) *models.Borrowing {
	return &models.Borrowing{
		UserID:     userID,
		BookID:     bookID,
		BorrowDate: now,
		DueDate:    now.AddDate(0, 0, LoanPeriodDays),
	}
}

// LateFine charges FinePerDay for every started day past the due date.
func LateFine(dueDate, returnedAt time.Time) float64 {
	if !returnedAt.After(dueDate) {
		return 0
	}
	daysLate := math.Ceil(returnedAt.Sub(dueDate).Hours() / 24)
	return daysLate * FinePerDay
}

// Return closes the borrowing and stores the accrued fine.
func Return(b *models.Borrowing, now time.Time) error {
	if err := CanReturn(StatusOf(b)); err != nil {
		return err
	}

	b.ReturnDate = &now
	b.Fine = LateFine(b.DueDate, now)
	return nil
}

// PayFine zeroes the fine; the borrowing stays returned.
func PayFine(b *models.Borrowing) error {
	if err := CanPayFine(StatusOf(b), b.Fine); err != nil {
		return err
	}

	b.Fine = 0
	return nil
}
