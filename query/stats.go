package query

import "hotelpro-backend/models"

type ServiceStats struct {
	Total        int     `json:"total"`
	Active       int     `json:"active"`
	Inactive     int     `json:"inactive"`
	AveragePrice float64 `json:"averagePrice"`
	Categories   int     `json:"categories"`
}

// ServiceStatistics aggregates over the full, unfiltered collection.
func ServiceStatistics(services []models.AdditionalService) ServiceStats {
	st := ServiceStats{Total: len(services)}
	if len(services) == 0 {
		return st
	}

	var sum float64
	categories := make(map[models.ServiceCategory]struct{})
	for _, s := range services {
		if s.IsActive {
			st.Active++
		}
		sum += s.UnitPrice
		categories[s.Category] = struct{}{}
	}
	st.Inactive = st.Total - st.Active
	st.AveragePrice = sum / float64(len(services))
	st.Categories = len(categories)
	return st
}

type EventStats struct {
	Total             int     `json:"total"`
	Active            int     `json:"active"`
	Inactive          int     `json:"inactive"`
	TotalRevenue      float64 `json:"totalRevenue"`
	ExpectedAttendees int     `json:"expectedAttendees"`
}

func EventStatistics(events []models.Event) EventStats {
	st := EventStats{Total: len(events)}
	for _, e := range events {
		if e.Status.IsActive() {
			st.Active++
		}
		st.TotalRevenue += e.TotalRevenue
		st.ExpectedAttendees += e.ExpectedAttendees
	}
	st.Inactive = st.Total - st.Active
	return st
}
