// Package query derives filtered views and statistics from a state snapshot.
// Every function here is pure and recomputes from scratch.
package query

import (
	"fmt"
	"hotelpro-backend/models"
	"strings"

	"github.com/google/uuid"
)

// All disables a selector.
const All = "all"

// StatusFilter selects records by their active grouping.
type StatusFilter string

const (
	StatusAll      StatusFilter = All
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

// ParseStatusFilter treats an empty selector as "all".
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusAll:
		return StatusAll, nil
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

func (f StatusFilter) match(active bool) bool {
	switch f {
	case StatusActive:
		return active
	case StatusInactive:
		return !active
	}
	return true
}

// CategoryFilter is either All or a service category.
type CategoryFilter string

func ParseCategoryFilter(s string) (CategoryFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == All {
		return All, nil
	}
	c, err := models.ParseServiceCategory(s)
	if err != nil {
		return "", err
	}
	return CategoryFilter(c), nil
}

func (f CategoryFilter) match(c models.ServiceCategory) bool {
	return f == "" || f == All || models.ServiceCategory(f) == c
}

type ServiceFilter struct {
	Search   string
	Status   StatusFilter
	Category CategoryFilter
}

// FilterServices keeps services whose name, description or category
// contains the search term and that pass the status and category selectors.
func FilterServices(services []models.AdditionalService, f ServiceFilter) []models.AdditionalService {
	term := strings.ToLower(f.Search)
	out := make([]models.AdditionalService, 0, len(services))
	for _, s := range services {
		matchesSearch := contains(s.Name, term) ||
			contains(s.Description, term) ||
			contains(string(s.Category), term)
		if matchesSearch && f.Status.match(s.IsActive) && f.Category.match(s.Category) {
			out = append(out, s)
		}
	}
	return out
}

type EventFilter struct {
	Search string
	Status StatusFilter
}

// FilterEvents keeps events whose name or any booked hall name contains the
// search term and whose status group passes the status selector.
func FilterEvents(events []models.Event, halls []models.Hall, f EventFilter) []models.Event {
	term := strings.ToLower(f.Search)
	names := hallNames(halls)
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !f.Status.match(e.Status.IsActive()) {
			continue
		}
		if contains(e.Name, term) || anyHallMatches(e.HallIDs, names, term) {
			out = append(out, e)
		}
	}
	return out
}

func anyHallMatches(ids []uuid.UUID, names map[uuid.UUID]string, term string) bool {
	for _, id := range ids {
		if name, ok := names[id]; ok && contains(name, term) {
			return true
		}
	}
	return false
}

func hallNames(halls []models.Hall) map[uuid.UUID]string {
	m := make(map[uuid.UUID]string, len(halls))
	for _, h := range halls {
		m[h.ID] = h.Name
	}
	return m
}

// contains expects term to be lower case already.
func contains(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}
