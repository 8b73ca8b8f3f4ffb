package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/bookwise-app/booking-api/internal/domain/booking"
	"github.com/bookwise-app/booking-api/internal/httperr"
	"github.com/bookwise-app/booking-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute fetches a booking visible to the caller. Non-admins only see
// their own; a foreign id reads as not found rather than forbidden.
func (uc *GetBooking) Execute(
	ctx context.Context,
	id uint,
	callerID uint,
	isAdmin bool,
) (*models.Booking, error) {

	b, err := uc.fetch(ctx, id, callerID, isAdmin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		// Store failures are not a not-found; let the boundary
		// report them as internal.
		return nil, err
	}
	return b, nil
}

func (uc *GetBooking) fetch(
	ctx context.Context,
	id uint,
	callerID uint,
	isAdmin bool,
) (*models.Booking, error) {
	if isAdmin {
		return uc.repo.GetByID(ctx, id)
	}
	return uc.repo.GetForOwner(ctx, id, callerID)
}
