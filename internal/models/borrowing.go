package models

import "time"

type Borrowing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// References Book.BookID, the business key.
	BookID string `gorm:"size:50;index;not null" json:"book_id"`

	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`

	// Nil while the copy is still out.
	ReturnDate *time.Time `json:"return_date"`

	// Accrued late fee, zeroed when paid. The record stays returned.
	Fine float64 `gorm:"default:0" json:"fine"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
