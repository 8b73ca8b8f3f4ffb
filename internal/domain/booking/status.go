package booking

import "github.com/bookwise-app/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus validates a caller-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}
