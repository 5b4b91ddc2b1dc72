// services/event_scheduler.go
package services

import (
	"context"
	"errors"
	"fmt"
	"hotelpro-backend/models"
	"hotelpro-backend/store"
	"hotelpro-backend/utils"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// EventStore is the part of the hotel store the scheduler uses.
type EventStore interface {
	Snapshot() store.HotelState
	ModifyEvent(ctx context.Context, id uuid.UUID, change func(*models.Event) bool) (models.Event, bool, error)
}

// EventScheduler moves events along their lifecycle as time passes and
// reminds organizers the day before their event.
type EventScheduler struct {
	store    EventStore
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
	cron     *cron.Cron
}

func NewEventScheduler(s EventStore, n Notifier, log *zap.Logger) *EventScheduler {
	return &EventScheduler{
		store:    s,
		notifier: n,
		log:      log,
		now:      time.Now,
		cron:     cron.New(),
	}
}

// Start registers both jobs and starts the cron runner. An empty spec
// disables the corresponding job.
func (s *EventScheduler) Start(statusSpec, reminderSpec string) error {
	if statusSpec != "" {
		if _, err := s.cron.AddFunc(statusSpec, func() {
			if _, err := s.SweepStatuses(context.Background()); err != nil {
				s.log.Error("status sweep failed", zap.Error(err))
			}
		}); err != nil {
			return fmt.Errorf("schedule status sweep %q: %w", statusSpec, err)
		}
	}
	if reminderSpec != "" {
		if _, err := s.cron.AddFunc(reminderSpec, func() {
			if _, err := s.SendReminders(context.Background()); err != nil {
				s.log.Error("sending reminders failed", zap.Error(err))
			}
		}); err != nil {
			return fmt.Errorf("schedule reminders %q: %w", reminderSpec, err)
		}
	}

	s.cron.Start()
	s.log.Info("event scheduler started", zap.String("statusSpec", statusSpec), zap.String("reminderSpec", reminderSpec))
	return nil
}

// Stop waits for running jobs to finish.
func (s *EventScheduler) Stop() {
	<-s.cron.Stop().Done()
}

// NextStatus returns the status an event should have at now, and whether it
// differs from the current one. Pending events wait for a person to confirm
// them; completed and cancelled events never move.
func NextStatus(e models.Event, now time.Time) (models.EventStatus, bool) {
	switch e.Status {
	case models.EventStatusConfirmed:
		if !now.Before(e.EndDateTime) {
			return models.EventStatusCompleted, true
		}
		if !now.Before(e.StartDateTime) {
			return models.EventStatusOngoing, true
		}
	case models.EventStatusOngoing:
		if !now.Before(e.EndDateTime) {
			return models.EventStatusCompleted, true
		}
	}
	return e.Status, false
}

// SweepStatuses advances every event whose time window has moved on and
// returns how many were changed.
func (s *EventScheduler) SweepStatuses(ctx context.Context) (int, error) {
	now := s.now()
	changed := 0
	var errs []error

	for _, e := range s.store.Snapshot().Events {
		if _, ok := NextStatus(e, now); !ok {
			continue
		}

		// The snapshot may be stale by now; decide again on the stored event.
		var from models.EventStatus
		updated, ok, err := s.store.ModifyEvent(ctx, e.ID, func(cur *models.Event) bool {
			next, ok := NextStatus(*cur, now)
			if !ok {
				return false
			}
			from = cur.Status
			cur.Status = next
			return true
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			errs = append(errs, fmt.Errorf("event %s: %w", e.ID, err))
			continue
		}
		if !ok {
			continue
		}
		changed++
		s.log.Info("event status advanced",
			zap.String("event", e.ID.String()),
			zap.String("from", string(from)),
			zap.String("to", string(updated.Status)))
	}
	return changed, errors.Join(errs...)
}

// SendReminders messages the organizer of every active event that starts
// on the next calendar day and returns how many messages were sent.
func (s *EventScheduler) SendReminders(ctx context.Context) (int, error) {
	now := s.now()
	snap := s.store.Snapshot()
	sent := 0
	var errs []error

	for _, e := range snap.Events {
		if !e.Status.IsActive() || e.OrganizerPhone == "" {
			continue
		}
		if utils.DaysBetween(now, e.StartDateTime) != 1 {
			continue
		}
		if err := s.notifier.Notify(ctx, e.OrganizerPhone, reminderMessage(e, snap.Halls)); err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", e.ID, err))
			continue
		}
		sent++
	}
	return sent, errors.Join(errs...)
}
