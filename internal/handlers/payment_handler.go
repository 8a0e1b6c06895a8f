package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/citylib/library-api/internal/dto"
	"github.com/citylib/library-api/internal/httperr"
	"github.com/citylib/library-api/internal/httpresp"
	"github.com/citylib/library-api/internal/middleware"
	"github.com/citylib/library-api/internal/models"
	"github.com/citylib/library-api/internal/notify"
)

type PaymentHandler struct {
	db   *gorm.DB
	mail *notify.Dispatcher
}

func NewPaymentHandler(db *gorm.DB, mail *notify.Dispatcher) *PaymentHandler {
	return &PaymentHandler{db: db, mail: mail}
}

// --------- Requests ---------

type ProcessPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Description   string  `json:"description" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	Email         string  `json:"email"`
}

// --------- Payment method catalog ---------

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Display metadata only, there is no gateway behind any of these.
var paymentMethods = []PaymentMethod{
	{ID: "credit_card", Name: "Credit Card", Icon: "fa-credit-card", Description: "Pay with Visa, MasterCard, or American Express"},
	{ID: "debit_card", Name: "Debit Card", Icon: "fa-credit-card", Description: "Pay with your debit card"},
	{ID: "upi", Name: "UPI", Icon: "fa-mobile-alt", Description: "Pay using UPI apps like Google Pay, PhonePe, Paytm"},
	{ID: "net_banking", Name: "Net Banking", Icon: "fa-university", Description: "Transfer directly from your bank account"},
	{ID: "paypal", Name: "PayPal", Icon: "fa-paypal", Description: "Pay using your PayPal account"},
	{ID: "bank_transfer", Name: "Bank Transfer", Icon: "fa-exchange-alt", Description: "Manual bank transfer"},
}

// --------- Handlers ---------

func (h *PaymentHandler) ListMethods(c *gin.Context) {
	httpresp.OK(c, paymentMethods)
}

func (h *PaymentHandler) Process(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Amount, description, and payment method are required")
		return
	}

	payment := models.Payment{
		UserID:        userID,
		PaymentID:     newPaymentID(),
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   time.Now(),
		Status:        "completed",
	}

	if err := h.db.Create(&payment).Error; err != nil {
		logrus.WithError(err).Error("payments: insert failed")
		httperr.Internal(c, "Payment processing failed")
		return
	}

	// Historical behavior: any payment whose description mentions a fine
	// clears every outstanding fine of the user, not just one. Flagged as
	// a latent bug but kept as-is.
	if strings.Contains(req.Description, "fine") || strings.Contains(req.Description, "Fine") {
		err := h.db.Model(&models.Borrowing{}).
			Where("user_id = ? AND fine > 0", userID).
			Update("fine", 0).Error
		if err != nil {
			logrus.WithError(err).Error("payments: fine reset failed")
		}
	}

	email := req.Email
	if email == "" {
		var user models.User
		if err := h.db.First(&user, userID).Error; err == nil {
			email = user.Email
		}
	}

	h.mail.Dispatch(notify.Event{
		To:      email,
		Subject: "Payment Confirmation - Library Management System",
		Body:    notify.PaymentReceipt(&payment),
	})

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Payment processed successfully",
		"payment_id": payment.PaymentID,
		"amount":     payment.Amount,
	})
}

func (h *PaymentHandler) History(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var rows []dto.PaymentHistoryRow
	err := h.db.
		Model(&models.Payment{}).
		Select("payment_id", "payment_date", "amount", "description").
		Where("user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("payments: history failed")
		httperr.Internal(c, "Failed to load payment history")
		return
	}

	httpresp.OK(c, rows)
}

// newPaymentID builds "PAY" + millisecond timestamp + 5 random base36
// characters. Collisions are possible, matching the historical data.
func newPaymentID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return strings.ToUpper(fmt.Sprintf("PAY%d%s", time.Now().UnixMilli(), suffix))
}
