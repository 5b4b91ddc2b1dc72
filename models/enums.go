package models

import "fmt"

// EventType classifies what kind of function is held in the venue.
type EventType string

const (
	EventTypeConference EventType = "conference"
	EventTypeWedding    EventType = "wedding"
	EventTypeBanquet    EventType = "banquet"
	EventTypeSeminar    EventType = "seminar"
	EventTypeExhibition EventType = "exhibition"
	EventTypeParty      EventType = "party"
	EventTypeMeeting    EventType = "meeting"
	EventTypeOther      EventType = "other"
)

var eventTypes = []EventType{
	EventTypeConference, EventTypeWedding, EventTypeBanquet, EventTypeSeminar,
	EventTypeExhibition, EventTypeParty, EventTypeMeeting, EventTypeOther,
}

func (t EventType) Valid() bool {
	for _, v := range eventTypes {
		if t == v {
			return true
		}
	}
	return false
}

func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown event type %q", s)
	}
	return t, nil
}

// EventStatus is the lifecycle state of an event. New events start as pending.
type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

var eventStatuses = []EventStatus{
	EventStatusPending, EventStatusConfirmed, EventStatusOngoing,
	EventStatusCompleted, EventStatusCancelled,
}

func EventStatuses() []EventStatus {
	return append([]EventStatus(nil), eventStatuses...)
}

func (s EventStatus) Valid() bool {
	for _, v := range eventStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsActive reports whether the event still occupies its halls.
// Completed and cancelled events are inactive.
func (s EventStatus) IsActive() bool {
	switch s {
	case EventStatusPending, EventStatusConfirmed, EventStatusOngoing:
		return true
	}
	return false
}

// Label is the grouping shown in the events table.
func (s EventStatus) Label() string {
	if s.IsActive() {
		return "Active"
	}
	return "Inactive"
}

func ParseEventStatus(s string) (EventStatus, error) {
	st := EventStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown event status %q", s)
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

type IdentificationType string

const (
	IdentificationNIC                  IdentificationType = "nic"
	IdentificationPassport             IdentificationType = "passport"
	IdentificationDrivingLicense       IdentificationType = "driving_license"
	IdentificationBusinessRegistration IdentificationType = "business_registration"
)

func (i IdentificationType) Valid() bool {
	switch i {
	case IdentificationNIC, IdentificationPassport, IdentificationDrivingLicense, IdentificationBusinessRegistration:
		return true
	}
	return false
}

// ServiceCategory groups additional services in the catalogue.
type ServiceCategory string

const (
	CategoryCatering   ServiceCategory = "catering"
	CategoryDecoration ServiceCategory = "decoration"
	CategoryTechnical  ServiceCategory = "technical"
	CategoryStaff      ServiceCategory = "staff"
	CategoryEquipment  ServiceCategory = "equipment"
	CategoryTransport  ServiceCategory = "transport"
	CategorySecurity   ServiceCategory = "security"
	CategoryOther      ServiceCategory = "other"
)

var categoryLabels = map[ServiceCategory]string{
	CategoryCatering:   "Catering & Food",
	CategoryDecoration: "Decoration & Design",
	CategoryTechnical:  "Technical & AV",
	CategoryStaff:      "Staff & Personnel",
	CategoryEquipment:  "Equipment & Furniture",
	CategoryTransport:  "Transportation",
	CategorySecurity:   "Security Services",
	CategoryOther:      "Other Services",
}

// ServiceCategories returns every category in display order.
func ServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryCatering, CategoryDecoration, CategoryTechnical, CategoryStaff,
		CategoryEquipment, CategoryTransport, CategorySecurity, CategoryOther,
	}
}

func (c ServiceCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c ServiceCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func ParseServiceCategory(s string) (ServiceCategory, error) {
	c := ServiceCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown service category %q", s)
	}
	return c, nil
}

// ServiceUnit is the pricing unit of an additional service.
type ServiceUnit string

const (
	UnitPerHour    ServiceUnit = "per hour"
	UnitPerDay     ServiceUnit = "per day"
	UnitPerEvent   ServiceUnit = "per event"
	UnitPerPerson  ServiceUnit = "per person"
	UnitPerPiece   ServiceUnit = "per piece"
	UnitPerSetup   ServiceUnit = "per setup"
	UnitPerVehicle ServiceUnit = "per vehicle"
	UnitFlatRate   ServiceUnit = "flat rate"
)

func (u ServiceUnit) Valid() bool {
	switch u {
	case UnitPerHour, UnitPerDay, UnitPerEvent, UnitPerPerson,
		UnitPerPiece, UnitPerSetup, UnitPerVehicle, UnitFlatRate:
		return true
	}
	return false
}

func ServiceUnits() []ServiceUnit {
	return []ServiceUnit{UnitPerHour, UnitPerDay, UnitPerEvent, UnitPerPerson, UnitPerPiece, UnitPerSetup, UnitPerVehicle, UnitFlatRate}
}
