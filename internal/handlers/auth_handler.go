package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookwise-app/booking-api/internal/auth"
	userdomain "github.com/bookwise-app/booking-api/internal/domain/user"
	"github.com/bookwise-app/booking-api/internal/httperr"
	"github.com/bookwise-app/booking-api/internal/httpresp"
	"github.com/bookwise-app/booking-api/internal/models"
	"github.com/bookwise-app/booking-api/internal/validators"
)

type AuthHandler struct {
	users userdomain.Repository
	jwt   *auth.JWT

	// emailDomainOK is swappable so tests don't depend on DNS.
	emailDomainOK func(email string) bool
}

func NewAuthHandler(users userdomain.Repository, jwt *auth.JWT) *AuthHandler {
	return &AuthHandler{
		users:         users,
		jwt:           jwt,
		emailDomainOK: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || len(name) > 50 {
		httperr.BadRequest(c, "invalid_name", "Name must be 2-50 characters.")
		return
	}

	if !validators.IsPasswordValid(req.Password) {
		httperr.BadRequest(c, "weak_password", "Password must be at least 8 characters with letters and digits.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.emailDomainOK(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	taken, err := h.users.EmailTaken(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to check existing user.")
		return
	}
	if taken {
		httperr.BadRequest(c, "user_already_exists", "User already exists.")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to process password.")
		return
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		IsAdmin:      false,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		// A concurrent register can slip past the EmailTaken check;
		// the unique index is the source of truth.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "user_already_exists", "User already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Failed to create user.")
		return
	}

	token, err := h.jwt.Issue(user.ID, user.IsAdmin)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to generate token.")
		return
	}

	httpresp.OK(c, gin.H{"token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same response for unknown email and wrong password.
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Failed to look up user.")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.jwt.Issue(user.ID, user.IsAdmin)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to generate token.")
		return
	}

	httpresp.OK(c, gin.H{"token": token})
}
