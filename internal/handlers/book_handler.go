package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/citylib/library-api/internal/dto"
	"github.com/citylib/library-api/internal/httperr"
	"github.com/citylib/library-api/internal/httpresp"
	"github.com/citylib/library-api/internal/models"
)

type BookHandler struct {
	db *gorm.DB
}

func NewBookHandler(db *gorm.DB) *BookHandler {
	return &BookHandler{db: db}
}

// --------- Requests ---------

type AddBookRequest struct {
	BookID          string `json:"book_id" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Author          string `json:"author" binding:"required"`
	Genre           string `json:"genre" binding:"required"`
	ISBN            string `json:"isbn" binding:"required"`
	PublicationYear int    `json:"publication_year" binding:"required"`
	TotalCopies     int    `json:"total_copies" binding:"required,min=1"`
}

// --------- Handlers ---------

func (h *BookHandler) Create(c *gin.Context) {
	var req AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "All fields are required")
		return
	}

	var count int64
	h.db.Model(&models.Book{}).
		Where("isbn = ? OR book_id = ?", req.ISBN, req.BookID).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Book ID or ISBN already exists")
		return
	}

	book := models.Book{
		BookID:          req.BookID,
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		ISBN:            req.ISBN,
		PublicationYear: req.PublicationYear,
		TotalCopies:     req.TotalCopies,
		// Every copy starts on the shelf.
		AvailableCopies: req.TotalCopies,
	}

	if err := h.db.Create(&book).Error; err != nil {
		logrus.WithError(err).Error("books: create failed")
		httperr.Internal(c, "Failed to add book")
		return
	}

	httpresp.Created(c, "Book added successfully")
}

func (h *BookHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		httperr.BadRequest(c, "Search query is required")
		return
	}

	like := "%" + strings.ToLower(query) + "%"

	var books []models.Book
	err := h.db.
		Select("book_id", "title", "author", "genre", "available_copies").
		Where(
			"LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(isbn) LIKE ?",
			like, like, like,
		).
		Find(&books).Error
	if err != nil {
		logrus.WithError(err).Error("books: search failed")
		httperr.Internal(c, "Failed to search books")
		return
	}

	httpresp.OK(c, books)
}

func (h *BookHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	var book dto.BookDetail
	err := h.db.Model(&models.Book{}).
		Select(
			"book_id", "title", "author", "genre", "isbn",
			"publication_year", "total_copies", "available_copies",
		).
		Where("book_id = ?", id).
		First(&book).Error
	if err != nil {
		httperr.NotFound(c, "Book not found")
		return
	}

	httpresp.OK(c, book)
}

func (h *BookHandler) AvailableCopies(c *gin.Context) {
	var books []models.Book
	err := h.db.
		Select("book_id", "title", "author", "total_copies", "available_copies").
		Where("available_copies > 0").
		Find(&books).Error
	if err != nil {
		logrus.WithError(err).Error("books: available copies failed")
		httperr.Internal(c, "Failed to load available copies")
		return
	}

	httpresp.OK(c, books)
}

func (h *BookHandler) BookWiseCopies(c *gin.Context) {
	var books []models.Book
	err := h.db.
		Select("book_id", "title", "total_copies", "available_copies").
		Find(&books).Error
	if err != nil {
		logrus.WithError(err).Error("books: book-wise copies failed")
		httperr.Internal(c, "Failed to load book copies")
		return
	}

	httpresp.OK(c, books)
}
