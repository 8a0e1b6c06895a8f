package dto

import "time"

type OutstandingFineRow struct {
	ID      uint      `json:"id"`
	BookID  string    `json:"book_id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
	Amount  float64   `json:"amount"`
}

type BorrowedBookRow struct {
	BorrowingID uint      `json:"borrowing_id"`
	BookID      string    `json:"book_id"`
	Title       string    `json:"title"`
	BorrowDate  time.Time `json:"borrow_date"`
	DueDate     time.Time `json:"due_date"`
}

type BorrowingHistoryRow struct {
	BookID     string     `json:"book_id"`
	Title      string     `json:"title"`
	BorrowDate time.Time  `json:"borrow_date"`
	ReturnDate *time.Time `json:"return_date"`
	FineAmount float64    `json:"fine_amount"`
}

type PaymentHistoryRow struct {
	PaymentID   string    `json:"payment_id"`
	PaymentDate time.Time `json:"payment_date"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}
