package query

import (
	"hotelpro-backend/models"
	"strings"

	"github.com/google/uuid"
)

const noHallsAssigned = "No halls assigned"

// EventRow is an event as listed in the events table.
type EventRow struct {
	models.Event
	HallNames   string `json:"hallNames"`
	StatusLabel string `json:"statusLabel"`
}

func EventRows(events []models.Event, halls []models.Hall) []EventRow {
	names := hallNames(halls)
	rows := make([]EventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, EventRow{
			Event:       e,
			HallNames:   joinHallNames(e.HallIDs, names),
			StatusLabel: e.Status.Label(),
		})
	}
	return rows
}

// HallNames resolves hall ids to a comma separated list of names. Unknown
// ids are skipped.
func HallNames(ids []uuid.UUID, halls []models.Hall) string {
	return joinHallNames(ids, hallNames(halls))
}

func joinHallNames(ids []uuid.UUID, names map[uuid.UUID]string) string {
	var parts []string
	for _, id := range ids {
		if name, ok := names[id]; ok && name != "" {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return noHallsAssigned
	}
	return strings.Join(parts, ", ")
}

// ServiceRow is an additional service as listed in the catalogue table.
type ServiceRow struct {
	models.AdditionalService
	CategoryLabel string `json:"categoryLabel"`
}

func ServiceRows(services []models.AdditionalService) []ServiceRow {
	rows := make([]ServiceRow, 0, len(services))
	for _, s := range services {
		rows = append(rows, ServiceRow{AdditionalService: s, CategoryLabel: s.Category.Label()})
	}
	return rows
}

// EventListView is everything the events list screen renders.
type EventListView struct {
	Rows  []EventRow `json:"rows"`
	Stats EventStats `json:"stats"`
	Shown int        `json:"shown"`
	Total int        `json:"total"`
}

func EventList(events []models.Event, halls []models.Hall, f EventFilter) EventListView {
	filtered := FilterEvents(events, halls, f)
	return EventListView{
		Rows:  EventRows(filtered, halls),
		Stats: EventStatistics(events),
		Shown: len(filtered),
		Total: len(events),
	}
}

type ServiceListView struct {
	Rows  []ServiceRow `json:"rows"`
	Stats ServiceStats `json:"stats"`
	Shown int          `json:"shown"`
	Total int          `json:"total"`
}

func ServiceList(services []models.AdditionalService, f ServiceFilter) ServiceListView {
	filtered := FilterServices(services, f)
	return ServiceListView{
		Rows:  ServiceRows(filtered),
		Stats: ServiceStatistics(services),
		Shown: len(filtered),
		Total: len(services),
	}
}
