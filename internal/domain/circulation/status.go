package circulation

import "github.com/citylib/library-api/internal/httperr"

// ===============================
// Borrowing Status
// ===============================

type Status string

const (
	StatusBorrowed Status = "borrowed"
	StatusReturned Status = "returned"
)

const (
	// LoanPeriodDays is how long a member may keep a copy.
	LoanPeriodDays = 14

	// FinePerDay is the flat late fee per started day.
	FinePerDay = 50
)

// ===============================
// Validations
// ===============================

// CanReturn only applies to a borrowing that is still out.
func CanReturn(current Status) error {
	if current != StatusBorrowed {
		return httperr.ErrBusiness("not_active")
	}
	return nil
}

// CanPayFine requires a returned borrowing with an unpaid fine.
func CanPayFine(current Status, fine float64) error {
	if current != StatusReturned || fine <= 0 {
		return httperr.ErrBusiness("no_fine")
	}
	return nil
}
