package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/bookwise-app/booking-api/internal/domain/booking"
	"github.com/bookwise-app/booking-api/internal/httperr"
	"github.com/bookwise-app/booking-api/internal/models"
)

type UpdateBookingStatus struct {
	repo domain.Repository
}

func NewUpdateBookingStatus(repo domain.Repository) *UpdateBookingStatus {
	return &UpdateBookingStatus{repo: repo}
}

// Execute moves a booking to the given status. Owners may update their
// own bookings, admins any. The status must be one of the enumerated
// values; nothing is persisted otherwise.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	id uint,
	callerID uint,
	isAdmin bool,
	status string,
) (*models.Booking, error) {

	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var b *models.Booking
	if isAdmin {
		b, err = uc.repo.GetByID(ctx, id)
	} else {
		b, err = uc.repo.GetForOwner(ctx, id, callerID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	b.Status = string(parsed)

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
