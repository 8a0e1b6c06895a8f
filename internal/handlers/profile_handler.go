package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/citylib/library-api/internal/httperr"
	"github.com/citylib/library-api/internal/httpresp"
	"github.com/citylib/library-api/internal/middleware"
	"github.com/citylib/library-api/internal/models"
	"github.com/citylib/library-api/internal/validators"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// --------- Handlers ---------

func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                user.ID,
		"full_name":         user.FullName,
		"email":             user.Email,
		"phone":             user.Phone,
		"address":           user.Address,
		"role":              user.Role,
		"membership_expiry": user.MembershipExpiry,
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Full name and email are required")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? AND id != ?", email, userID).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Email already exists")
		return
	}

	err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"full_name": req.FullName,
			"email":     email,
			"phone":     req.Phone,
			"address":   req.Address,
		}).Error
	if err != nil {
		logrus.WithError(err).Error("profile: update failed")
		httperr.Internal(c, "Failed to update profile")
		return
	}

	httpresp.Message(c, "Profile updated successfully")
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "All fields are required")
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		httperr.BadRequest(c, "New passwords do not match")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	// Re-verify before accepting the new password.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.BadRequest(c, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Failed to change password")
		return
	}

	if err := h.db.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		logrus.WithError(err).Error("profile: password update failed")
		httperr.Internal(c, "Failed to change password")
		return
	}

	httpresp.Message(c, "Password changed successfully")
}
