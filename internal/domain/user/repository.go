package user

import (
	"context"

	"github.com/bookwise-app/booking-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error

	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// EmailTaken reports whether any account already uses email.
	EmailTaken(ctx context.Context, email string) (bool, error)
}
