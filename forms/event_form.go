package forms

import (
	"context"
	"errors"
	"fmt"
	"hotelpro-backend/models"
	"hotelpro-backend/query"
	"hotelpro-backend/store"
	"hotelpro-backend/utils"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventStore is what the event form needs from the hotel store.
type EventStore interface {
	Snapshot() store.HotelState
	Halls() []models.Hall
	ActiveHalls() []models.Hall
	Event(id uuid.UUID) (models.Event, error)
	CreateEvent(ctx context.Context, e models.Event) (models.Event, error)
	UpdateEvent(ctx context.Context, e models.Event) (models.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) (bool, error)
}

// EventDraft is the editable part of an event.
type EventDraft struct {
	Name                 string
	Type                 models.EventType
	OrganizerName        string
	OrganizerPhone       string
	IdentificationType   models.IdentificationType
	IdentificationNumber string
	StartDateTime        time.Time
	EndDateTime          time.Time
	ExpectedAttendees    int
	HallIDs              []uuid.UUID
	TotalRevenue         float64
	Status               models.EventStatus
	PaymentStatus        models.PaymentStatus
}

// DefaultEventDraft is the draft a new event starts from.
func DefaultEventDraft(now time.Time) EventDraft {
	start := now.Truncate(time.Minute)
	return EventDraft{
		Type:               models.EventTypeConference,
		IdentificationType: models.IdentificationNIC,
		StartDateTime:      start,
		EndDateTime:        start.Add(time.Hour),
		ExpectedAttendees:  50,
		HallIDs:            []uuid.UUID{},
		Status:             models.EventStatusPending,
		PaymentStatus:      models.PaymentStatusPending,
	}
}

func EventDraftFrom(e models.Event) EventDraft {
	return EventDraft{
		Name:                 e.Name,
		Type:                 e.Type,
		OrganizerName:        e.OrganizerName,
		OrganizerPhone:       e.OrganizerPhone,
		IdentificationType:   e.IdentificationType,
		IdentificationNumber: e.IdentificationNumber,
		StartDateTime:        e.StartDateTime,
		EndDateTime:          e.EndDateTime,
		ExpectedAttendees:    e.ExpectedAttendees,
		HallIDs:              slices.Clone(e.HallIDs),
		TotalRevenue:         e.TotalRevenue,
		Status:               e.Status,
		PaymentStatus:        e.PaymentStatus,
	}
}

// applyTo copies the draft onto e, leaving identity and audit fields alone.
func (d EventDraft) applyTo(e models.Event) models.Event {
	e.Name = strings.TrimSpace(d.Name)
	e.Type = d.Type
	e.OrganizerName = strings.TrimSpace(d.OrganizerName)
	e.OrganizerPhone = strings.TrimSpace(d.OrganizerPhone)
	e.IdentificationType = d.IdentificationType
	e.IdentificationNumber = strings.TrimSpace(d.IdentificationNumber)
	e.StartDateTime = d.StartDateTime
	e.EndDateTime = d.EndDateTime
	e.ExpectedAttendees = d.ExpectedAttendees
	e.HallIDs = slices.Clone(d.HallIDs)
	e.TotalRevenue = d.TotalRevenue
	e.Status = d.Status
	e.PaymentStatus = d.PaymentStatus
	return e
}

// ValidateEventDraft checks d against the halls that can be booked.
func ValidateEventDraft(d EventDraft, halls []models.Hall) error {
	v := &ValidationError{Message: "Please correct the highlighted fields"}

	if strings.TrimSpace(d.Name) == "" {
		v.add("name", "Event name is required")
	}
	if len(d.HallIDs) == 0 {
		v.add("hallIds", "At least one hall must be selected")
	}
	for _, id := range d.HallIDs {
		if !slices.ContainsFunc(halls, func(h models.Hall) bool { return h.ID == id }) {
			v.add("hallIds", "Selected hall is not available")
		}
	}
	if !d.Type.Valid() {
		v.add("type", "Invalid event type")
	}
	if !d.Status.Valid() {
		v.add("status", "Invalid event status")
	}
	if !d.PaymentStatus.Valid() {
		v.add("paymentStatus", "Invalid payment status")
	}
	if !d.IdentificationType.Valid() {
		v.add("identificationType", "Invalid identification type")
	}
	if d.OrganizerPhone != "" && !utils.ValidatePhone(d.OrganizerPhone) {
		v.add("organizerPhone", "Invalid phone number")
	}
	if d.ExpectedAttendees < 0 {
		v.add("expectedAttendees", "Expected attendees cannot be negative")
	}
	if d.TotalRevenue < 0 {
		v.add("totalRevenue", "Total revenue cannot be negative")
	}
	if d.EndDateTime.Before(d.StartDateTime) {
		v.add("endDateTime", "End time must be after start time")
	}
	return v.orNil()
}

// EventForm drives the events screen.
type EventForm struct {
	machine
	store    EventStore
	now      func() time.Time
	selected *models.Event

	Draft  EventDraft
	Errors map[string]string
}

func NewEventForm(s EventStore) *EventForm {
	return &EventForm{store: s, now: time.Now}
}

// SetClock replaces the clock used for the default start time.
func (f *EventForm) SetClock(now func() time.Time) {
	f.now = now
}

// Selected returns the event being edited or viewed.
func (f *EventForm) Selected() (models.Event, bool) {
	if f.selected == nil {
		return models.Event{}, false
	}
	return f.selected.Clone(), true
}

// AvailableHalls lists the halls a draft may select.
func (f *EventForm) AvailableHalls() []models.Hall {
	return f.store.ActiveHalls()
}

// OpenCreate starts a new draft. It fails with ErrNoHallsAvailable when
// there is nothing to book.
func (f *EventForm) OpenCreate() error {
	if len(f.store.ActiveHalls()) == 0 {
		return ErrNoHallsAvailable
	}
	if err := f.open(ModeCreate); err != nil {
		return err
	}
	f.selected = nil
	f.Draft = DefaultEventDraft(f.now())
	f.Errors = nil
	return nil
}

func (f *EventForm) OpenEdit(id uuid.UUID) error {
	return f.openExisting(ModeEdit, id)
}

func (f *EventForm) OpenView(id uuid.UUID) error {
	return f.openExisting(ModeView, id)
}

func (f *EventForm) openExisting(mode Mode, id uuid.UUID) error {
	if f.Mode() != ModeList {
		return ErrInvalidTransition
	}
	e, err := f.store.Event(id)
	if err != nil {
		return err
	}
	if err := f.open(mode); err != nil {
		return err
	}
	f.selected = &e
	f.Draft = EventDraftFrom(e)
	f.Errors = nil
	return nil
}

// Close drops the draft and returns to the list.
func (f *EventForm) Close() {
	f.reset()
	f.selected = nil
	f.Draft = EventDraft{}
	f.Errors = nil
}

// ToggleHall adds the hall to the draft or removes it if already selected.
func (f *EventForm) ToggleHall(id uuid.UUID) error {
	if err := f.editable(); err != nil {
		return err
	}
	if i := slices.Index(f.Draft.HallIDs, id); i >= 0 {
		f.Draft.HallIDs = slices.Delete(f.Draft.HallIDs, i, i+1)
		return nil
	}
	f.Draft.HallIDs = append(f.Draft.HallIDs, id)
	return nil
}

// SelectAllHalls selects every available hall, or clears the selection
// when every available hall is already selected.
func (f *EventForm) SelectAllHalls() error {
	if err := f.editable(); err != nil {
		return err
	}
	halls := f.store.ActiveHalls()
	allSelected := len(halls) > 0
	for _, h := range halls {
		if !slices.Contains(f.Draft.HallIDs, h.ID) {
			allSelected = false
			break
		}
	}
	if allSelected {
		f.Draft.HallIDs = []uuid.UUID{}
		return nil
	}
	ids := make([]uuid.UUID, 0, len(halls))
	for _, h := range halls {
		ids = append(ids, h.ID)
	}
	f.Draft.HallIDs = ids
	return nil
}

// bookableHalls are the active halls plus, when editing, the halls the
// event is already booked into, so a later deactivated hall does not block
// saving it.
func (f *EventForm) bookableHalls() []models.Hall {
	halls := f.store.ActiveHalls()
	if f.Mode() != ModeEdit || f.selected == nil {
		return halls
	}
	all := f.store.Halls()
	for _, id := range f.selected.HallIDs {
		if slices.ContainsFunc(halls, func(h models.Hall) bool { return h.ID == id }) {
			continue
		}
		hall := models.Hall{ID: id}
		if i := slices.IndexFunc(all, func(h models.Hall) bool { return h.ID == id }); i >= 0 {
			hall = all[i]
		}
		halls = append(halls, hall)
	}
	return halls
}

// ExpectVersion makes the next edit Submit fail with store.ErrConflict
// unless the stored event was last updated at updatedAt.
func (f *EventForm) ExpectVersion(updatedAt time.Time) {
	if f.Mode() == ModeEdit && f.selected != nil {
		f.selected.UpdatedAt = updatedAt
	}
}

func (f *EventForm) SelectedHallNames() string {
	return query.HallNames(f.Draft.HallIDs, f.store.Halls())
}

// Submit validates the draft and saves it. On a validation failure the
// field messages are kept in Errors and the form stays open; the store is
// not called. On success the form returns to the list.
func (f *EventForm) Submit(ctx context.Context, actor string) (models.Event, error) {
	if err := f.editable(); err != nil {
		return models.Event{}, err
	}
	halls := f.bookableHalls()
	if len(halls) == 0 {
		return models.Event{}, ErrNoHallsAvailable
	}

	if err := ValidateEventDraft(f.Draft, halls); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			f.Errors = verr.Fields
		}
		return models.Event{}, err
	}
	f.Errors = nil

	var (
		saved models.Event
		err   error
	)
	if f.Mode() == ModeEdit {
		saved, err = f.store.UpdateEvent(ctx, f.Draft.applyTo(f.selected.Clone()))
	} else {
		saved, err = f.store.CreateEvent(ctx, f.Draft.applyTo(models.Event{CreatedBy: actor}))
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("save event: %w", err)
	}

	f.Close()
	return saved, nil
}

// Delete removes the event once confirm approves it. A declined
// confirmation leaves everything as it was and reports false.
func (f *EventForm) Delete(ctx context.Context, id uuid.UUID, confirm Confirm[models.Event]) (bool, error) {
	e, err := f.store.Event(id)
	if err != nil {
		return false, err
	}
	if confirm == nil || !confirm(e) {
		return false, nil
	}
	removed, err := f.store.DeleteEvent(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	f.Close()
	return removed, nil
}

// List renders the events table from the current store snapshot.
func (f *EventForm) List(filter query.EventFilter) query.EventListView {
	snap := f.store.Snapshot()
	return query.EventList(snap.Events, snap.Halls, filter)
}
