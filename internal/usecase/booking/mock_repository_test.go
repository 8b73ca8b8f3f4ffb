package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bookwise-app/booking-api/internal/models"
)

// MockRepository is a mock implementation of the booking Repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) GetForOwner(ctx context.Context, id uint, ownerID uint) (*models.Booking, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
