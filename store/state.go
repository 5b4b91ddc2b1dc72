// Package store holds the hotel state: halls, events, additional services
// and event packages. State changes only through commands applied by Apply.
package store

import (
	"errors"
	"hotelpro-backend/models"
	"slices"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate id")
	ErrMissingID   = errors.New("missing id")
	// ErrConflict means the record changed after the caller read it.
	ErrConflict = errors.New("record was modified concurrently")
)

// HotelState is a snapshot of every collection the admin UI works with.
// Collections keep insertion order.
type HotelState struct {
	Halls              []models.Hall              `json:"halls"`
	Events             []models.Event             `json:"events"`
	AdditionalServices []models.AdditionalService `json:"additionalServices"`
	EventPackages      []models.EventPackage      `json:"eventPackages"`
}

// Clone returns a deep copy of s.
func (s HotelState) Clone() HotelState {
	out := HotelState{
		Halls:              slices.Clone(s.Halls),
		AdditionalServices: slices.Clone(s.AdditionalServices),
	}
	if s.Events != nil {
		out.Events = make([]models.Event, len(s.Events))
		for i, e := range s.Events {
			out.Events[i] = e.Clone()
		}
	}
	if s.EventPackages != nil {
		out.EventPackages = make([]models.EventPackage, len(s.EventPackages))
		for i, p := range s.EventPackages {
			out.EventPackages[i] = p.Clone()
		}
	}
	return out
}

// ActiveHalls returns the halls that can be booked.
func (s HotelState) ActiveHalls() []models.Hall {
	var out []models.Hall
	for _, h := range s.Halls {
		if h.IsActive && h.Name != "" {
			out = append(out, h)
		}
	}
	return out
}

func (s HotelState) eventIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.Events, func(e models.Event) bool { return e.ID == id })
}

func (s HotelState) serviceIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.AdditionalServices, func(a models.AdditionalService) bool { return a.ID == id })
}
