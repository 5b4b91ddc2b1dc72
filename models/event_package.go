package models

import (
	"slices"

	"github.com/google/uuid"
)

// EventPackage bundles a base price with a set of additional services.
type EventPackage struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Description  string      `gorm:"type:text" json:"description"`
	BasePrice    float64     `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	MaxAttendees int         `json:"maxAttendees"`
	ServiceIDs   []uuid.UUID `gorm:"serializer:json;type:jsonb" json:"serviceIds"`
	IsActive     bool        `gorm:"not null" json:"isActive"`
	Position     int64       `gorm:"index" json:"-"`
}

func (p EventPackage) Clone() EventPackage {
	p.ServiceIDs = slices.Clone(p.ServiceIDs)
	return p
}
