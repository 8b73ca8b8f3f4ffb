package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bookwise-app/booking-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) EmailTaken(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
