package models

import (
	"time"

	"github.com/google/uuid"
)

// AdditionalService is an extra that can be sold with an event booking.
type AdditionalService struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Category    ServiceCategory `gorm:"type:varchar(20);not null" json:"category"`
	UnitPrice   float64         `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Unit        ServiceUnit     `gorm:"type:varchar(20);not null" json:"unit"`
	MinQuantity int             `gorm:"not null" json:"minQuantity"`
	MaxQuantity int             `gorm:"not null" json:"maxQuantity"`
	IsActive    bool            `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime:false" json:"updatedAt"`
	Position    int64           `gorm:"index" json:"-"`
}
