package models

import "time"

type Book struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// Business key shown to members ("B1", "GO-042", ...), distinct from
	// the surrogate primary key.
	BookID string `gorm:"size:50;uniqueIndex;not null" json:"book_id"`

	Title           string `gorm:"size:255;not null" json:"title"`
	Author          string `gorm:"size:100;not null" json:"author"`
	Genre           string `gorm:"size:50" json:"genre"`
	ISBN            string `gorm:"size:20;uniqueIndex;not null" json:"isbn"`
	PublicationYear int    `json:"publication_year"`

	// 0 <= AvailableCopies <= TotalCopies, decremented on borrow and
	// incremented on return.
	TotalCopies     int `json:"total_copies"`
	AvailableCopies int `json:"available_copies"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
