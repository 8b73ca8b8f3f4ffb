package booking

import (
	"context"

	"github.com/bookwise-app/booking-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Booking) error

	// GetForOwner returns the booking only when it belongs to ownerID.
	GetForOwner(ctx context.Context, id uint, ownerID uint) (*models.Booking, error)

	// GetByID returns the booking regardless of ownership (admin paths).
	GetByID(ctx context.Context, id uint) (*models.Booking, error)

	ListByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error)

	// ListAll returns every booking with its owner preloaded.
	ListAll(ctx context.Context) ([]models.Booking, error)

	Update(ctx context.Context, b *models.Booking) error
	Delete(ctx context.Context, b *models.Booking) error
}
