package booking

import (
	"context"

	domain "github.com/bookwise-app/booking-api/internal/domain/booking"
	"github.com/bookwise-app/booking-api/internal/models"
)

// ListAllBookings backs the admin overview; owners come preloaded so
// the listing carries name and email.
type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

func (uc *ListAllBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListAll(ctx)
}
