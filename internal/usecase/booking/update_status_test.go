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

func TestUpdateBookingStatus_Owner(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetForOwner", mock.Anything, uint(5), uint(1)).
		Return(&models.Booking{ID: 5, OwnerID: 1, Status: "pending"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	uc := NewUpdateBookingStatus(repo)

	b, err := uc.Execute(context.Background(), 5, 1, false, "confirmed")

	assert.NoError(t, err)
	assert.Equal(t, "confirmed", b.Status)
	repo.AssertExpectations(t)
}

func TestUpdateBookingStatus_AdminBypassesOwnership(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, uint(5)).
		Return(&models.Booking{ID: 5, OwnerID: 99, Status: "pending"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateBookingStatus(repo)

	b, err := uc.Execute(context.Background(), 5, 1, true, "cancelled")

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", b.Status)
	repo.AssertNotCalled(t, "GetForOwner", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBookingStatus_InvalidValue(t *testing.T) {
	repo := new(MockRepository)
	uc := NewUpdateBookingStatus(repo)

	_, err := uc.Execute(context.Background(), 5, 1, false, "done")

	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	// Nothing fetched, nothing persisted.
	repo.AssertNotCalled(t, "GetForOwner", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateBookingStatus_ForeignBookingReadsAsNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetForOwner", mock.Anything, uint(5), uint(2)).
		Return(nil, gorm.ErrRecordNotFound)

	uc := NewUpdateBookingStatus(repo)

	_, err := uc.Execute(context.Background(), 5, 2, false, "confirmed")

	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateBookingStatus_StoreFailurePropagates(t *testing.T) {
	repo := new(MockRepository)
	storeErr := errors.New("connection refused")
	repo.On("GetForOwner", mock.Anything, uint(5), uint(1)).
		Return(nil, storeErr)

	uc := NewUpdateBookingStatus(repo)

	_, err := uc.Execute(context.Background(), 5, 1, false, "confirmed")

	assert.False(t, httperr.IsBusiness(err, "booking_not_found"))
	assert.ErrorIs(t, err, storeErr)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
