package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bookwise-app/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetForOwner(
	ctx context.Context,
	id uint,
	ownerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Delete(b).Error
}
