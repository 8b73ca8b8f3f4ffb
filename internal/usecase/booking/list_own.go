package booking

import (
	"context"

	domain "github.com/bookwise-app/booking-api/internal/domain/booking"
	"github.com/bookwise-app/booking-api/internal/models"
)

type ListOwnBookings struct {
	repo domain.Repository
}

func NewListOwnBookings(repo domain.Repository) *ListOwnBookings {
	return &ListOwnBookings{repo: repo}
}

func (uc *ListOwnBookings) Execute(
	ctx context.Context,
	ownerID uint,
) ([]models.Booking, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
