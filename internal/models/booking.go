package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint  `gorm:"not null;index" json:"owner_id"`
	Owner   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner,omitempty"`

	Service string    `gorm:"size:50;not null" json:"service"`
	Date    time.Time `gorm:"not null" json:"date"`
	Notes   string    `gorm:"size:200" json:"notes,omitempty"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
