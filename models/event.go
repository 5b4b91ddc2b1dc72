package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID                   uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name                 string             `gorm:"not null" json:"name"`
	Type                 EventType          `gorm:"type:varchar(20);not null" json:"type"`
	OrganizerName        string             `json:"organizerName"`
	OrganizerPhone       string             `json:"organizerPhone,omitempty"`
	IdentificationType   IdentificationType `gorm:"type:varchar(30)" json:"identificationType"`
	IdentificationNumber string             `json:"identificationNumber"`
	StartDateTime        time.Time          `gorm:"not null" json:"startDateTime"`
	EndDateTime          time.Time          `gorm:"not null" json:"endDateTime"`
	ExpectedAttendees    int                `gorm:"not null" json:"expectedAttendees"`
	HallIDs              []uuid.UUID        `gorm:"serializer:json;type:jsonb" json:"hallIds"`
	TotalRevenue         float64            `gorm:"type:decimal(12,2);not null" json:"totalRevenue"`
	Status               EventStatus        `gorm:"type:varchar(20);not null" json:"status"`
	PaymentStatus        PaymentStatus      `gorm:"type:varchar(20);not null" json:"paymentStatus"`
	CreatedBy            string             `json:"createdBy"`
	CreatedAt            time.Time          `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt            time.Time          `gorm:"autoUpdateTime:false" json:"updatedAt"`
	Position             int64              `gorm:"index" json:"-"`
}

// Clone returns a copy that shares no slices with e.
func (e Event) Clone() Event {
	e.HallIDs = slices.Clone(e.HallIDs)
	return e
}

// UsesHall reports whether the event is booked into the given hall.
func (e Event) UsesHall(id uuid.UUID) bool {
	return slices.Contains(e.HallIDs, id)
}
