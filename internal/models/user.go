package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:50;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Reference into avatar storage (object key or filename). Empty
	// until the user uploads one.
	Avatar string `gorm:"size:255" json:"avatar,omitempty"`

	IsAdmin bool `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
