package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/bookwise-app/booking-api/internal/domain/booking"
	"github.com/bookwise-app/booking-api/internal/httperr"
	"github.com/bookwise-app/booking-api/internal/models"
)

type DeleteBooking struct {
	repo domain.Repository
}

func NewDeleteBooking(repo domain.Repository) *DeleteBooking {
	return &DeleteBooking{repo: repo}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	id uint,
	callerID uint,
	isAdmin bool,
) error {

	var b *models.Booking
	var err error
	if isAdmin {
		b, err = uc.repo.GetByID(ctx, id)
	} else {
		b, err = uc.repo.GetForOwner(ctx, id, callerID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		return err
	}

	return uc.repo.Delete(ctx, b)
}
