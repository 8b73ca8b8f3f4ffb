package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/bookwise-app/booking-api/internal/httperr"
	"github.com/bookwise-app/booking-api/internal/models"
)

func TestGetBooking_Owner(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetForOwner", mock.Anything, uint(3), uint(1)).
		Return(&models.Booking{ID: 3, OwnerID: 1}, nil)

	uc := NewGetBooking(repo)

	b, err := uc.Execute(context.Background(), 3, 1, false)

	assert.NoError(t, err)
	assert.Equal(t, uint(3), b.ID)
}

func TestGetBooking_Admin(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, uint(3)).
		Return(&models.Booking{ID: 3, OwnerID: 99}, nil)

	uc := NewGetBooking(repo)

	b, err := uc.Execute(context.Background(), 3, 1, true)

	assert.NoError(t, err)
	assert.Equal(t, uint(99), b.OwnerID)
}

func TestGetBooking_ForeignReadsAsNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetForOwner", mock.Anything, uint(3), uint(2)).
		Return(nil, gorm.ErrRecordNotFound)

	uc := NewGetBooking(repo)

	_, err := uc.Execute(context.Background(), 3, 2, false)

	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestGetBooking_StoreFailurePropagates(t *testing.T) {
	repo := new(MockRepository)
	storeErr := errors.New("connection refused")
	repo.On("GetForOwner", mock.Anything, uint(3), uint(1)).
		Return(nil, storeErr)

	uc := NewGetBooking(repo)

	_, err := uc.Execute(context.Background(), 3, 1, false)

	assert.False(t, httperr.IsBusiness(err, "booking_not_found"))
	assert.ErrorIs(t, err, storeErr)
}
