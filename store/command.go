package store

import (
	"fmt"
	"hotelpro-backend/models"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Command is a single state change. The set of commands is closed; Apply
// handles every implementation in this package.
type Command interface {
	Name() string
	isCommand()
}

type CreateEvent struct{ Event models.Event }

// UpdateEvent replaces the stored event. A non-zero UpdatedAt must match the
// stored one, otherwise the update fails with ErrConflict.
type UpdateEvent struct{ Event models.Event }
type DeleteEvent struct{ ID uuid.UUID }
type CreateService struct{ Service models.AdditionalService }
type UpdateService struct{ Service models.AdditionalService }
type DeleteService struct{ ID uuid.UUID }

// Seed fills empty collections. Collections that already hold records are
// left as they are.
type Seed struct{ Data HotelState }

func (CreateEvent) Name() string   { return "create_event" }
func (UpdateEvent) Name() string   { return "update_event" }
func (DeleteEvent) Name() string   { return "delete_event" }
func (CreateService) Name() string { return "create_service" }
func (UpdateService) Name() string { return "update_service" }
func (DeleteService) Name() string { return "delete_service" }
func (Seed) Name() string          { return "seed" }

func (CreateEvent) isCommand()   {}
func (UpdateEvent) isCommand()   {}
func (DeleteEvent) isCommand()   {}
func (CreateService) isCommand() {}
func (UpdateService) isCommand() {}
func (DeleteService) isCommand() {}
func (Seed) isCommand()          {}

// Result describes what a command changed.
type Result struct {
	Event    *models.Event
	Service  *models.AdditionalService
	Affected int
}

// Apply returns the state produced by running cmd against s at time now.
// s itself is never modified.
func Apply(s HotelState, cmd Command, now time.Time) (HotelState, Result, error) {
	next := s.Clone()

	switch c := cmd.(type) {
	case CreateEvent:
		e := c.Event.Clone()
		if e.ID == uuid.Nil {
			return s, Result{}, fmt.Errorf("create event: %w", ErrMissingID)
		}
		if next.eventIndex(e.ID) >= 0 {
			return s, Result{}, fmt.Errorf("create event %s: %w", e.ID, ErrDuplicateID)
		}
		e.CreatedAt = now
		e.UpdatedAt = now
		next.Events = append(next.Events, e)
		out := e.Clone()
		return next, Result{Event: &out, Affected: 1}, nil

	case UpdateEvent:
		i := next.eventIndex(c.Event.ID)
		if i < 0 {
			return s, Result{}, fmt.Errorf("update event %s: %w", c.Event.ID, ErrNotFound)
		}
		prev := next.Events[i]
		if stale(c.Event.UpdatedAt, prev.UpdatedAt) {
			return s, Result{}, fmt.Errorf("update event %s: %w", c.Event.ID, ErrConflict)
		}
		e := c.Event.Clone()
		e.CreatedAt = prev.CreatedAt
		e.UpdatedAt = nextStamp(now, prev.UpdatedAt)
		next.Events[i] = e
		out := e.Clone()
		return next, Result{Event: &out, Affected: 1}, nil

	case DeleteEvent:
		i := next.eventIndex(c.ID)
		if i < 0 {
			return s, Result{}, nil
		}
		next.Events = slices.Delete(next.Events, i, i+1)
		return next, Result{Affected: 1}, nil

	case CreateService:
		a := c.Service
		if a.ID == uuid.Nil {
			return s, Result{}, fmt.Errorf("create service: %w", ErrMissingID)
		}
		if next.serviceIndex(a.ID) >= 0 {
			return s, Result{}, fmt.Errorf("create service %s: %w", a.ID, ErrDuplicateID)
		}
		a.CreatedAt = now
		a.UpdatedAt = now
		next.AdditionalServices = append(next.AdditionalServices, a)
		return next, Result{Service: &a, Affected: 1}, nil

	case UpdateService:
		i := next.serviceIndex(c.Service.ID)
		if i < 0 {
			return s, Result{}, fmt.Errorf("update service %s: %w", c.Service.ID, ErrNotFound)
		}
		prev := next.AdditionalServices[i]
		if stale(c.Service.UpdatedAt, prev.UpdatedAt) {
			return s, Result{}, fmt.Errorf("update service %s: %w", c.Service.ID, ErrConflict)
		}
		a := c.Service
		a.CreatedAt = prev.CreatedAt
		a.UpdatedAt = nextStamp(now, prev.UpdatedAt)
		next.AdditionalServices[i] = a
		return next, Result{Service: &a, Affected: 1}, nil

	case DeleteService:
		i := next.serviceIndex(c.ID)
		if i < 0 {
			return s, Result{}, nil
		}
		next.AdditionalServices = slices.Delete(next.AdditionalServices, i, i+1)
		return next, Result{Affected: 1}, nil

	case Seed:
		data := c.Data.Clone()
		affected := 0
		if len(next.Halls) == 0 && len(data.Halls) > 0 {
			next.Halls = data.Halls
			affected += len(data.Halls)
		}
		if len(next.EventPackages) == 0 && len(data.EventPackages) > 0 {
			next.EventPackages = data.EventPackages
			affected += len(data.EventPackages)
		}
		if len(next.AdditionalServices) == 0 && len(data.AdditionalServices) > 0 {
			for i := range data.AdditionalServices {
				data.AdditionalServices[i].CreatedAt = now
				data.AdditionalServices[i].UpdatedAt = now
			}
			next.AdditionalServices = data.AdditionalServices
			affected += len(data.AdditionalServices)
		}
		return next, Result{Affected: affected}, nil
	}

	return s, Result{}, fmt.Errorf("unsupported command %T", cmd)
}

func stale(seen, stored time.Time) bool {
	return !seen.IsZero() && !seen.Equal(stored)
}

func (r Result) clone() Result {
	if r.Event != nil {
		e := r.Event.Clone()
		r.Event = &e
	}
	if r.Service != nil {
		a := *r.Service
		r.Service = &a
	}
	return r
}

// nextStamp is now, or just after prev when the clock has not moved past
// it. Every update gets a new UpdatedAt so stale copies can be detected.
func nextStamp(now, prev time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}
