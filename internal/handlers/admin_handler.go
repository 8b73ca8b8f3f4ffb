package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookwise-app/booking-api/internal/httperr"
	"github.com/bookwise-app/booking-api/internal/httpresp"
	"github.com/bookwise-app/booking-api/internal/middleware"
	"github.com/bookwise-app/booking-api/internal/models"
	ucbooking "github.com/bookwise-app/booking-api/internal/usecase/booking"
)

type AdminHandler struct {
	db             *gorm.DB
	listAllUC      *ucbooking.ListAllBookings
	updateStatusUC *ucbooking.UpdateBookingStatus
}

func NewAdminHandler(
	db *gorm.DB,
	listAllUC *ucbooking.ListAllBookings,
	updateStatusUC *ucbooking.UpdateBookingStatus,
) *AdminHandler {
	return &AdminHandler{
		db:             db,
		listAllUC:      listAllUC,
		updateStatusUC: updateStatusUC,
	}
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Failed to list users.")
		return
	}

	httpresp.List(c, users)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_user", "Failed to delete user.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.Message(c, "User deleted successfully")
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.updateStatusUC.Execute(c.Request.Context(), id, adminID, true, req.Status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}
