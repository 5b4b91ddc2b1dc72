package store

import (
	"hotelpro-backend/models"

	"github.com/google/uuid"
)

// DefaultSeed returns the venue data a fresh installation starts with.
func DefaultSeed(newID func() uuid.UUID) HotelState {
	halls := []models.Hall{
		{ID: newID(), Name: "Grand Ballroom", Capacity: 500, IsActive: true},
		{ID: newID(), Name: "Crystal Hall", Capacity: 250, IsActive: true},
		{ID: newID(), Name: "Garden Pavilion", Capacity: 150, IsActive: true},
		{ID: newID(), Name: "Conference Room A", Capacity: 60, IsActive: true},
		{ID: newID(), Name: "Executive Boardroom", Capacity: 20, IsActive: true},
	}

	services := []models.AdditionalService{
		{
			ID: newID(), Name: "Buffet Catering", Description: "Hot and cold buffet with dessert station",
			Category: models.CategoryCatering, UnitPrice: 35, Unit: models.UnitPerPerson,
			MinQuantity: 20, MaxQuantity: 500, IsActive: true,
		},
		{
			ID: newID(), Name: "Floral Decoration", Description: "Fresh flower arrangements for tables and stage",
			Category: models.CategoryDecoration, UnitPrice: 450, Unit: models.UnitPerSetup,
			MinQuantity: 1, MaxQuantity: 5, IsActive: true,
		},
		{
			ID: newID(), Name: "Projector & Screen", Description: "HD projector with 3m screen and operator",
			Category: models.CategoryTechnical, UnitPrice: 80, Unit: models.UnitPerDay,
			MinQuantity: 1, MaxQuantity: 10, IsActive: true,
		},
		{
			ID: newID(), Name: "Professional DJ Service", Description: "DJ with sound system and lighting",
			Category: models.CategoryTechnical, UnitPrice: 120, Unit: models.UnitPerHour,
			MinQuantity: 2, MaxQuantity: 12, IsActive: true,
		},
		{
			ID: newID(), Name: "Event Security", Description: "Licensed security staff for entrances and parking",
			Category: models.CategorySecurity, UnitPrice: 25, Unit: models.UnitPerHour,
			MinQuantity: 4, MaxQuantity: 100, IsActive: true,
		},
	}

	packages := []models.EventPackage{
		{
			ID: newID(), Name: "Business Conference", Description: "Hall, projector and lunch buffet",
			BasePrice: 2500, MaxAttendees: 250, IsActive: true,
			ServiceIDs: []uuid.UUID{services[0].ID, services[2].ID},
		},
		{
			ID: newID(), Name: "Wedding Deluxe", Description: "Ballroom, flowers, DJ and buffet dinner",
			BasePrice: 9000, MaxAttendees: 500, IsActive: true,
			ServiceIDs: []uuid.UUID{services[0].ID, services[1].ID, services[3].ID},
		},
		{
			ID: newID(), Name: "Private Party", Description: "Garden pavilion with DJ and security",
			BasePrice: 1800, MaxAttendees: 150, IsActive: true,
			ServiceIDs: []uuid.UUID{services[3].ID, services[4].ID},
		},
	}

	return HotelState{
		Halls:              halls,
		AdditionalServices: services,
		EventPackages:      packages,
	}
}
