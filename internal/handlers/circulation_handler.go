package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/citylib/library-api/internal/dto"
	"github.com/citylib/library-api/internal/httperr"
	"github.com/citylib/library-api/internal/httpresp"
	"github.com/citylib/library-api/internal/middleware"
	ucCirculation "github.com/citylib/library-api/internal/usecase/circulation"
)

// ======================================================
// HANDLER
// ======================================================

type CirculationHandler struct {
	db      *gorm.DB
	borrow  *ucCirculation.Borrow
	ret     *ucCirculation.Return
	payFine *ucCirculation.PayFine
}

func NewCirculationHandler(
	db *gorm.DB,
	borrow *ucCirculation.Borrow,
	ret *ucCirculation.Return,
	payFine *ucCirculation.PayFine,
) *CirculationHandler {
	return &CirculationHandler{
		db:      db,
		borrow:  borrow,
		ret:     ret,
		payFine: payFine,
	}
}

// --------- Requests ---------

type BorrowRequest struct {
	BookID string `json:"book_id" binding:"required"`
}

// ======================================================
// BORROW
// ======================================================

func (h *CirculationHandler) Borrow(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Book ID is required")
		return
	}

	b, err := h.borrow.Execute(c.Request.Context(), userID, req.BookID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "book_not_available"):
			httperr.BadRequest(c, "Book not available")
		case httperr.IsBusiness(err, "already_borrowed"):
			httperr.BadRequest(c, "You have already borrowed this book")
		default:
			logrus.WithError(err).Error("circulation: borrow failed")
			httperr.Internal(c, "Failed to borrow book")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Book borrowed successfully",
		"due_date": b.DueDate,
	})
}

// ======================================================
// RETURN
// ======================================================

func (h *CirculationHandler) Return(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	borrowingID, err := strconv.ParseUint(c.Param("borrowingId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid borrowing id")
		return
	}

	b, err := h.ret.Execute(c.Request.Context(), userID, uint(borrowingID))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "no_active_borrowing"),
			httperr.IsBusiness(err, "not_active"):
			httperr.BadRequest(c, "No active borrowing found")
		default:
			logrus.WithError(err).Error("circulation: return failed")
			httperr.Internal(c, "Failed to return book")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Book returned successfully",
		"fine":    b.Fine,
	})
}

// ======================================================
// PAY FINE
// ======================================================

func (h *CirculationHandler) PayFine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	fineID, err := strconv.ParseUint(c.Param("fineId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid fine id")
		return
	}

	if _, err := h.payFine.Execute(c.Request.Context(), userID, uint(fineID)); err != nil {
		if httperr.IsBusiness(err, "no_fine") {
			httperr.BadRequest(c, "No fine found")
			return
		}
		logrus.WithError(err).Error("circulation: pay fine failed")
		httperr.Internal(c, "Failed to pay fine")
		return
	}

	httpresp.Message(c, "Fine paid successfully")
}

// ======================================================
// MEMBER QUERIES
// ======================================================

func (h *CirculationHandler) OutstandingFines(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var fines []dto.OutstandingFineRow
	err := h.db.
		Table("borrowings").
		Select(
			"borrowings.id, borrowings.book_id, books.title, " +
				"borrowings.due_date, borrowings.fine AS amount",
		).
		Joins("JOIN books ON books.book_id = borrowings.book_id").
		Where("borrowings.user_id = ? AND borrowings.fine > 0", userID).
		Scan(&fines).Error
	if err != nil {
		logrus.WithError(err).Error("circulation: outstanding fines failed")
		httperr.Internal(c, "Failed to load fines")
		return
	}

	httpresp.OK(c, fines)
}

func (h *CirculationHandler) BorrowedBooks(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var rows []dto.BorrowedBookRow
	err := h.db.
		Table("borrowings").
		Select(
			"borrowings.id AS borrowing_id, borrowings.book_id, books.title, " +
				"borrowings.borrow_date, borrowings.due_date",
		).
		Joins("JOIN books ON books.book_id = borrowings.book_id").
		Where("borrowings.user_id = ? AND borrowings.return_date IS NULL", userID).
		Scan(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("circulation: borrowed books failed")
		httperr.Internal(c, "Failed to load borrowed books")
		return
	}

	httpresp.OK(c, rows)
}

func (h *CirculationHandler) BorrowingHistory(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var rows []dto.BorrowingHistoryRow
	err := h.db.
		Table("borrowings").
		Select(
			"borrowings.book_id, books.title, borrowings.borrow_date, " +
				"borrowings.return_date, borrowings.fine AS fine_amount",
		).
		Joins("JOIN books ON books.book_id = borrowings.book_id").
		Where("borrowings.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("circulation: history failed")
		httperr.Internal(c, "Failed to load borrowing history")
		return
	}

	httpresp.OK(c, rows)
}
