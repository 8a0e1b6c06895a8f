package notify

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/citylib/library-api/internal/models"
)

// Mailer renders notification emails and "sends" them by logging the full
// message. No real transport is wired in.
type Mailer struct{}

func NewMailer() *Mailer {
	return &Mailer{}
}

func (m *Mailer) Send(to, subject, body string) error {
	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("sending email")
	logrus.Info(body)
	return nil
}

// PaymentReceipt renders the payment-confirmation message body.
func PaymentReceipt(p *models.Payment) string {
	return fmt.Sprintf(
		"LIBRARY MANAGEMENT SYSTEM - PAYMENT CONFIRMATION\n\n"+
			"Dear Member,\n\n"+
			"Your payment has been processed successfully.\n\n"+
			"Payment Details:\n"+
			"- Payment ID: %s\n"+
			"- Amount: %.2f\n"+
			"- Description: %s\n"+
			"- Payment Method: %s\n"+
			"- Date: %s\n\n"+
			"Thank you for your payment!",
		p.PaymentID,
		p.Amount,
		p.Description,
		p.PaymentMethod,
		p.PaymentDate.Format("2006-01-02"),
	)
}

// PasswordReset renders the reset-instructions message body.
func PasswordReset(token string, expires time.Time) string {
	return fmt.Sprintf(
		"LIBRARY MANAGEMENT SYSTEM - PASSWORD RESET\n\n"+
			"Use the token below to reset your password.\n\n"+
			"- Token: %s\n"+
			"- Valid until: %s",
		token,
		expires.Format(time.RFC1123),
	)
}
