package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citylib/library-api/internal/dto"
	"github.com/citylib/library-api/internal/models"
)

func TestBorrowEndpoint(t *testing.T) {
	t.Run("borrow decrements available copies", func(t *testing.T) {
		env := newTestEnv(t)
		owner := env.register(t, "owner@example.com", "owner")
		member := env.register(t, "alice@example.com", "member")
		env.addBook(t, owner, "B1", 3)

		w := env.do(t, http.MethodPost, "/api/borrow", member, gin.H{"book_id": "B1"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var book models.Book
		require.NoError(t, env.db.Where("book_id = ?", "B1").First(&book).Error)
		assert.Equal(t, 2, book.AvailableCopies)
	})

	t.Run("double borrow of the same book is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		owner := env.register(t, "owner@example.com", "owner")
		member := env.register(t, "alice@example.com", "member")
		env.addBook(t, owner, "B1", 3)

		w := env.do(t, http.MethodPost, "/api/borrow", member, gin.H{"book_id": "B1"})
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodPost, "/api/borrow", member, gin.H{"book_id": "B1"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error string `json:"error"`
		}
		decode(t, w, &resp)
		assert.Equal(t, "You have already borrowed this book", resp.Error)
	})

	t.Run("exhausted book is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		owner := env.register(t, "owner@example.com", "owner")
		alice := env.register(t, "alice@example.com", "member")
		bob := env.register(t, "bob@example.com", "member")
		env.addBook(t, owner, "B1", 1)

		w := env.do(t, http.MethodPost, "/api/borrow", alice, gin.H{"book_id": "B1"})
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodPost, "/api/borrow", bob, gin.H{"book_id": "B1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Full member journey: borrow (3 -> 2 copies), return
// three days past the due date for a 150 fine, pay it off, and find the
// payment in the history.
func TestBorrowReturnPayFineScenario(t *testing.T) {
	env := newTestEnv(t)
	owner := env.register(t, "owner@example.com", "owner")
	alice := env.register(t, "alice@example.com", "member")
	env.addBook(t, owner, "B1", 3)

	w := env.do(t, http.MethodPost, "/api/borrow", alice, gin.H{"book_id": "B1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var book models.Book
	require.NoError(t, env.db.Where("book_id = ?", "B1").First(&book).Error)
	require.Equal(t, 2, book.AvailableCopies)

	// Backdate the due date so the return is a bit over two days late,
	// which rounds up to three chargeable days.
	var borrowing models.Borrowing
	require.NoError(t, env.db.Where("book_id = ?", "B1").First(&borrowing).Error)
	require.NoError(t, env.db.Model(&borrowing).
		Update("due_date", time.Now().Add(-49*time.Hour)).Error)

	w = env.do(t, http.MethodPost, "/api/return/1", alice, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var returnResp struct {
		Message string  `json:"message"`
		Fine    float64 `json:"fine"`
	}
	decode(t, w, &returnResp)
	assert.Equal(t, float64(150), returnResp.Fine)

	require.NoError(t, env.db.Where("book_id = ?", "B1").First(&book).Error)
	assert.Equal(t, 3, book.AvailableCopies, "return puts the copy back")

	// The fine shows up as outstanding.
	w = env.do(t, http.MethodGet, "/api/outstanding-fines", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fines []dto.OutstandingFineRow
	decode(t, w, &fines)
	require.Len(t, fines, 1)
	assert.Equal(t, float64(150), fines[0].Amount)

	// Pay it off.
	w = env.do(t, http.MethodPost, "/api/pay-fine/1", alice, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, env.db.First(&borrowing, borrowing.ID).Error)
	assert.Zero(t, borrowing.Fine)

	w = env.do(t, http.MethodGet, "/api/outstanding-fines", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fines = nil
	decode(t, w, &fines)
	assert.Empty(t, fines)

	// And the payment is in alice's history.
	w = env.do(t, http.MethodGet, "/api/payment-history", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payments []dto.PaymentHistoryRow
	decode(t, w, &payments)
	require.Len(t, payments, 1)
	assert.Equal(t, float64(150), payments[0].Amount)

	// Paying again finds nothing.
	w = env.do(t, http.MethodPost, "/api/pay-fine/1", alice, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReturnEndpoint(t *testing.T) {
	t.Run("returning an unknown borrowing", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.register(t, "alice@example.com", "member")

		w := env.do(t, http.MethodPost, "/api/return/99", member, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error string `json:"error"`
		}
		decode(t, w, &resp)
		assert.Equal(t, "No active borrowing found", resp.Error)
	})

	t.Run("cannot return another member's borrowing", func(t *testing.T) {
		env := newTestEnv(t)
		owner := env.register(t, "owner@example.com", "owner")
		alice := env.register(t, "alice@example.com", "member")
		bob := env.register(t, "bob@example.com", "member")
		env.addBook(t, owner, "B1", 1)

		w := env.do(t, http.MethodPost, "/api/borrow", alice, gin.H{"book_id": "B1"})
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodPost, "/api/return/1", bob, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMemberListings(t *testing.T) {
	env := newTestEnv(t)
	owner := env.register(t, "owner@example.com", "owner")
	alice := env.register(t, "alice@example.com", "member")
	env.addBook(t, owner, "B1", 2)
	env.addBook(t, owner, "B2", 2)

	w := env.do(t, http.MethodPost, "/api/borrow", alice, gin.H{"book_id": "B1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, "/api/borrow", alice, gin.H{"book_id": "B2"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/return/1", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("borrowed-books lists only active loans", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/borrowed-books", alice, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rows []dto.BorrowedBookRow
		decode(t, w, &rows)
		require.Len(t, rows, 1)
		assert.Equal(t, "B2", rows[0].BookID)
	})

	t.Run("borrowing-history lists everything", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/borrowing-history", alice, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rows []dto.BorrowingHistoryRow
		decode(t, w, &rows)
		assert.Len(t, rows, 2)
	})
}
