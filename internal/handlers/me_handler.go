package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookwise-app/booking-api/internal/auth"
	"github.com/bookwise-app/booking-api/internal/httperr"
	"github.com/bookwise-app/booking-api/internal/httpresp"
	"github.com/bookwise-app/booking-api/internal/middleware"
	"github.com/bookwise-app/booking-api/internal/models"
	"github.com/bookwise-app/booking-api/internal/storage"
	"github.com/bookwise-app/booking-api/internal/validators"
)

type MeHandler struct {
	db      *gorm.DB
	avatars storage.AvatarStore
}

func NewMeHandler(db *gorm.DB, avatars storage.AvatarStore) *MeHandler {
	return &MeHandler{db: db, avatars: avatars}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// --------- Handlers ---------

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Failed to load user.")
		return
	}

	httpresp.OK(c, user)
}

// UpdateProfile applies a partial update: only supplied fields change.
// Accepts JSON or a multipart form carrying an optional avatar file.
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Failed to load user.")
		return
	}

	var req UpdateProfileRequest
	isMultipart := strings.HasPrefix(c.ContentType(), "multipart/")
	if isMultipart {
		if v, ok := c.GetPostForm("name"); ok {
			req.Name = &v
		}
		if v, ok := c.GetPostForm("email"); ok {
			req.Email = &v
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 2 || len(name) > 50 {
			httperr.BadRequest(c, "invalid_name", "Name must be 2-50 characters.")
			return
		}
		user.Name = name
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
			return
		}

		var count int64
		if err := h.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", email, user.ID).
			Count(&count).Error; err != nil {
			httperr.Internal(c, "internal_error", "Failed to check email.")
			return
		}
		if count > 0 {
			httperr.Conflict(c, "email_taken", "Email is already in use.")
			return
		}
		user.Email = email
	}

	if isMultipart {
		if fileHeader, err := c.FormFile("avatar"); err == nil {
			ref, err := h.storeAvatar(c, fileHeader)
			if err != nil {
				if errors.Is(err, storage.ErrInvalidImage) {
					httperr.BadRequest(c, "invalid_avatar", "Avatar must be a jpeg, png or webp image.")
					return
				}
				httperr.Internal(c, "failed_to_store_avatar", "Failed to store avatar.")
				return
			}
			user.Avatar = ref
		}
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to update profile.")
		return
	}

	httpresp.OK(c, user)
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsPasswordValid(req.NewPassword) {
		httperr.BadRequest(c, "weak_password", "Password must be at least 8 characters with letters and digits.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Failed to load user.")
		return
	}

	if !auth.CheckPassword(req.OldPassword, user.PasswordHash) {
		httperr.BadRequest(c, "old_password_incorrect", "Old password incorrect.")
		return
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to process password.")
		return
	}

	user.PasswordHash = hashed
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Failed to update password.")
		return
	}

	httpresp.Message(c, "Password updated")
}

func (h *MeHandler) storeAvatar(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	normalized, err := storage.NormalizeAvatar(f)
	if err != nil {
		return "", err
	}

	key := uuid.NewString() + ".webp"
	return h.avatars.Put(c.Request.Context(), key, bytes.NewReader(normalized), "image/webp")
}
