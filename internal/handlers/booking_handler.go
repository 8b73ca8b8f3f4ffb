package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookwise-app/booking-api/internal/httperr"
	"github.com/bookwise-app/booking-api/internal/httpresp"
	"github.com/bookwise-app/booking-api/internal/middleware"
	ucbooking "github.com/bookwise-app/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucbooking.CreateBooking
	listOwnUC      *ucbooking.ListOwnBookings
	getUC          *ucbooking.GetBooking
	updateStatusUC *ucbooking.UpdateBookingStatus
	deleteUC       *ucbooking.DeleteBooking
}

func NewBookingHandler(
	createUC *ucbooking.CreateBooking,
	listOwnUC *ucbooking.ListOwnBookings,
	getUC *ucbooking.GetBooking,
	updateStatusUC *ucbooking.UpdateBookingStatus,
	deleteUC *ucbooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		listOwnUC:      listOwnUC,
		getUC:          getUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Notes   string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func callerIdentity(c *gin.Context) (uint, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	isAdmin := c.MustGet(middleware.ContextIsAdmin).(bool)
	return userID, isAdmin
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return 0, false
	}
	return uint(id), true
}

func writeBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_service":
		httperr.BadRequest(c, "invalid_service", "Service must be 2-50 characters.")
	case "invalid_notes":
		httperr.BadRequest(c, "invalid_notes", "Notes must be at most 200 characters.")
	case "invalid_date":
		httperr.BadRequest(c, "invalid_date", "Date must be a valid RFC3339 timestamp.")
	case "date_not_future":
		httperr.BadRequest(c, "date_not_future", "Date must be in the future.")
	case "invalid_status":
		httperr.BadRequest(c, "invalid_status", "Status must be pending, confirmed, or cancelled.")
	case "booking_not_found":
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID, _ := callerIdentity(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		OwnerID: userID,
		Service: req.Service,
		Date:    req.Date,
		Notes:   req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) ListOwn(c *gin.Context) {
	userID, _ := callerIdentity(c)

	bookings, err := h.listOwnUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.OK(c, bookings)
}

func (h *BookingHandler) GetOne(c *gin.Context) {
	userID, isAdmin := callerIdentity(c)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), id, userID, isAdmin)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, isAdmin := callerIdentity(c)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.updateStatusUC.Execute(c.Request.Context(), id, userID, isAdmin, req.Status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	userID, isAdmin := callerIdentity(c)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, userID, isAdmin); err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Message(c, "Booking deleted")
}
