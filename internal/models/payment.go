package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Generated business key ("PAY..."), not guaranteed unique.
	PaymentID string `gorm:"size:50;index" json:"payment_id"`

	Amount        float64   `json:"amount"`
	Description   string    `gorm:"size:255" json:"description"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
	Status        string    `gorm:"size:20;default:'completed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
