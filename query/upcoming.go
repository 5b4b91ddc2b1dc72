package query

import (
	"hotelpro-backend/models"
	"slices"
	"time"
)

// Upcoming returns up to limit active events that have not started yet,
// soonest first.
func Upcoming(events []models.Event, now time.Time, limit int) []models.Event {
	out := make([]models.Event, 0, limit)
	for _, e := range events {
		if e.Status.IsActive() && !e.StartDateTime.Before(now) {
			out = append(out, e.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b models.Event) int {
		return a.StartDateTime.Compare(b.StartDateTime)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
