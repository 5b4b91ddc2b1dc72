package models

import "github.com/google/uuid"

// Hall is a bookable room in the venue. Halls are managed outside this
// service and are read-only here.
type Hall struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Capacity int       `gorm:"not null" json:"capacity"`
	IsActive bool      `gorm:"not null" json:"isActive"`
	Position int64     `gorm:"index" json:"-"`
}
