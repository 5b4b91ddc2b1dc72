package store

import (
	"context"
	"errors"
	"hotelpro-backend/models"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersister struct {
	persistFn func(cmd Command, next HotelState, res Result) error
	loadFn    func() (HotelState, error)
	calls     []string
}

func (f *fakePersister) Persist(_ context.Context, cmd Command, next HotelState, res Result) error {
	f.calls = append(f.calls, cmd.Name())
	if f.persistFn == nil {
		return nil
	}
	return f.persistFn(cmd, next, res)
}

func (f *fakePersister) Load(context.Context) (HotelState, error) {
	if f.loadFn == nil {
		return HotelState{}, nil
	}
	return f.loadFn()
}

type fakeObserver struct {
	commands map[string]int
	failures int
	states   int
}

func (o *fakeObserver) ObserveCommand(command string, err error) {
	if o.commands == nil {
		o.commands = map[string]int{}
	}
	o.commands[command]++
	if err != nil {
		o.failures++
	}
}

func (o *fakeObserver) ObserveState(HotelState) { o.states++ }

// steppingClock returns a clock that advances by one minute on every call.
func steppingClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func sampleEvent(hall uuid.UUID) models.Event {
	return models.Event{
		Name:              "Annual Sales Conference",
		Type:              models.EventTypeConference,
		OrganizerName:     "Jane Perera",
		StartDateTime:     epoch.Add(48 * time.Hour),
		EndDateTime:       epoch.Add(56 * time.Hour),
		ExpectedAttendees: 120,
		HallIDs:           []uuid.UUID{hall},
		Status:            models.EventStatusPending,
		PaymentStatus:     models.PaymentStatusPending,
		CreatedBy:         "admin",
	}
}

func sampleService() models.AdditionalService {
	return models.AdditionalService{
		Name:        "Coffee Break",
		Description: "Coffee, tea and pastries",
		Category:    models.CategoryCatering,
		UnitPrice:   6.5,
		Unit:        models.UnitPerPerson,
		MinQuantity: 10,
		MaxQuantity: 300,
		IsActive:    true,
	}
}

func TestStore_CreateEvent_AssignsFreshID(t *testing.T) {
	s := New(WithClock(steppingClock(epoch)))
	ctx := context.Background()
	hall := uuid.New()

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 20; i++ {
		e, err := s.CreateEvent(ctx, sampleEvent(hall))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.False(t, seen[e.ID], "id %s reused", e.ID)
		seen[e.ID] = true
		assert.Equal(t, e.CreatedAt, e.UpdatedAt)
	}
	assert.Len(t, s.Snapshot().Events, 20)
}

func TestStore_CreateEvent_DuplicateIDRejected(t *testing.T) {
	fixed := uuid.New()
	s := New(WithIDGenerator(func() uuid.UUID { return fixed }))
	ctx := context.Background()

	_, err := s.CreateEvent(ctx, sampleEvent(uuid.New()))
	require.NoError(t, err)

	_, err = s.CreateEvent(ctx, sampleEvent(uuid.New()))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, s.Snapshot().Events, 1)
}

func TestStore_UpdateEvent_RefreshesUpdatedAt(t *testing.T) {
	s := New(WithClock(steppingClock(epoch)))
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, sampleEvent(uuid.New()))
	require.NoError(t, err)

	changed := created
	changed.Name = "Annual Sales Conference 2026"
	changed.Status = models.EventStatusConfirmed
	changed.CreatedAt = time.Time{}

	updated, err := s.UpdateEvent(ctx, changed)
	require.NoError(t, err)

	got, err := s.Event(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, "Annual Sales Conference 2026", got.Name)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt))

	changed.UpdatedAt = got.UpdatedAt
	changed.CreatedAt = got.CreatedAt
	assert.Equal(t, changed, got)
}

func TestStore_UpdateEvent_ClockGoingBackwards(t *testing.T) {
	now := epoch
	s := New(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, sampleEvent(uuid.New()))
	require.NoError(t, err)

	now = epoch.Add(-time.Hour)
	updated, err := s.UpdateEvent(ctx, created)
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestStore_UpdateEvent_NotFound(t *testing.T) {
	s := New()
	e := sampleEvent(uuid.New())
	e.ID = uuid.New()

	_, err := s.UpdateEvent(context.Background(), e)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, s.Snapshot().Events)
}

func TestStore_DeleteEvent(t *testing.T) {
	s := New()
	ctx := context.Background()

	a, err := s.CreateEvent(ctx, sampleEvent(uuid.New()))
	require.NoError(t, err)
	b, err := s.CreateEvent(ctx, sampleEvent(uuid.New()))
	require.NoError(t, err)

	removed, err := s.DeleteEvent(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = s.Event(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	events := s.Snapshot().Events
	require.Len(t, events, 1)
	assert.Equal(t, b.ID, events[0].ID)

	removed, err = s.DeleteEvent(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, s.Snapshot().Events, 1)
}

func TestStore_ServiceLifecycle(t *testing.T) {
	s := New(WithClock(steppingClock(epoch)))
	ctx := context.Background()

	created, err := s.CreateService(ctx, sampleService())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	created.IsActive = false
	updated, err := s.UpdateService(ctx, created)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))

	got, err := s.Service(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	removed, err := s.DeleteService(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = s.Service(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateService(ctx, created)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PersistFailureKeepsState(t *testing.T) {
	p := &fakePersister{
		persistFn: func(cmd Command, _ HotelState, _ Result) error {
			if _, ok := cmd.(CreateService); ok {
				return errors.New("connection reset")
			}
			return nil
		},
	}
	obs := &fakeObserver{}
	s := New(WithPersister(p), WithObserver(obs))

	_, err := s.CreateService(context.Background(), sampleService())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Empty(t, s.Snapshot().AdditionalServices)
	assert.Equal(t, []string{"create_service"}, p.calls)
	assert.Equal(t, 1, obs.failures)
	assert.Equal(t, 0, obs.states)
}

func TestStore_CancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.CreateService(ctx, sampleService())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Snapshot().AdditionalServices)
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := New()
	ctx := context.Background()
	hall := uuid.New()

	created, err := s.CreateEvent(ctx, sampleEvent(hall))
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Events[0].Name = "mutated"
	snap.Events[0].HallIDs[0] = uuid.New()

	got, err := s.Event(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annual Sales Conference", got.Name)
	assert.Equal(t, []uuid.UUID{hall}, got.HallIDs)
}

func TestStore_InitializeData(t *testing.T) {
	obs := &fakeObserver{}
	s := New(WithObserver(obs))
	ctx := context.Background()

	require.True(t, s.NeedsSeed())
	require.NoError(t, s.InitializeData(ctx))
	assert.False(t, s.NeedsSeed())

	snap := s.Snapshot()
	assert.NotEmpty(t, snap.Halls)
	assert.NotEmpty(t, snap.EventPackages)
	assert.NotEmpty(t, snap.AdditionalServices)
	assert.Len(t, s.ActiveHalls(), len(snap.Halls))

	// A second seed leaves populated collections alone.
	require.NoError(t, s.InitializeData(ctx))
	again := s.Snapshot()
	assert.Equal(t, snap.Halls, again.Halls)
	assert.Equal(t, snap.AdditionalServices, again.AdditionalServices)
	assert.Equal(t, 2, obs.commands["seed"])
}

func TestStore_Load(t *testing.T) {
	hall := models.Hall{ID: uuid.New(), Name: "Crystal Hall", Capacity: 250, IsActive: true}
	p := &fakePersister{
		loadFn: func() (HotelState, error) {
			return HotelState{Halls: []models.Hall{hall}}, nil
		},
	}
	s := New(WithPersister(p))
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, []models.Hall{hall}, s.Halls())
	assert.True(t, s.NeedsSeed())

	p.loadFn = func() (HotelState, error) { return HotelState{}, errors.New("no database") }
	assert.Error(t, s.Load(context.Background()))
	assert.Len(t, s.Halls(), 1)
}

func TestStore_UpdateEvent_StaleCopyConflicts(t *testing.T) {
	now := epoch
	s := New(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, sampleEvent(uuid.New()))
	require.NoError(t, err)
	stale := created.Clone()

	// Clock stuck at the creation time still yields a new version.
	cancelled := created.Clone()
	cancelled.Status = models.EventStatusCancelled
	_, err = s.UpdateEvent(ctx, cancelled)
	require.NoError(t, err)

	stale.Status = models.EventStatusConfirmed
	_, err = s.UpdateEvent(ctx, stale)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := s.Event(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCancelled, got.Status)

	// A zero UpdatedAt writes unconditionally.
	stale.UpdatedAt = time.Time{}
	_, err = s.UpdateEvent(ctx, stale)
	assert.NoError(t, err)
}

func TestStore_UpdateService_StaleCopyConflicts(t *testing.T) {
	s := New(WithClock(steppingClock(epoch)))
	ctx := context.Background()

	created, err := s.CreateService(ctx, sampleService())
	require.NoError(t, err)
	_, err = s.UpdateService(ctx, created)
	require.NoError(t, err)

	_, err = s.UpdateService(ctx, created)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestStore_ModifyEvent(t *testing.T) {
	s := New(WithClock(steppingClock(epoch)))
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, sampleEvent(uuid.New()))
	require.NoError(t, err)

	got, changed, err := s.ModifyEvent(ctx, created.ID, func(e *models.Event) bool {
		return e.Status == models.EventStatusCompleted
	})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, created, got)

	got, changed, err = s.ModifyEvent(ctx, created.ID, func(e *models.Event) bool {
		e.ID = uuid.New()
		e.Status = models.EventStatusConfirmed
		return true
	})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, models.EventStatusConfirmed, got.Status)
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt))
	assert.Len(t, s.Snapshot().Events, 1)

	_, _, err = s.ModifyEvent(ctx, uuid.New(), func(*models.Event) bool { return true })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ModifyEvent_Serialised(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, sampleEvent(uuid.New()))
	require.NoError(t, err)

	const workers, rounds = 8, 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				_, _, err := s.ModifyEvent(ctx, created.ID, func(e *models.Event) bool {
					e.ExpectedAttendees++
					return true
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	got, err := s.Event(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ExpectedAttendees+workers*rounds, got.ExpectedAttendees)
}

func TestStore_ModifyService(t *testing.T) {
	s := New(WithClock(steppingClock(epoch)))
	ctx := context.Background()

	created, err := s.CreateService(ctx, sampleService())
	require.NoError(t, err)

	got, changed, err := s.ModifyService(ctx, created.ID, func(a *models.AdditionalService) bool {
		a.IsActive = false
		return true
	})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, got.IsActive)

	_, _, err = s.ModifyService(ctx, uuid.New(), func(*models.AdditionalService) bool { return true })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PersisterGetsCopies(t *testing.T) {
	p := &fakePersister{persistFn: func(_ Command, next HotelState, res Result) error {
		if res.Service != nil {
			res.Service.IsActive = true
			res.Service.Name = "rewritten"
		}
		if res.Event != nil {
			res.Event.HallIDs[0] = uuid.Nil
		}
		for i := range next.AdditionalServices {
			next.AdditionalServices[i].IsActive = true
		}
		return nil
	}}
	s := New(WithPersister(p))
	ctx := context.Background()

	svc := sampleService()
	svc.IsActive = false
	created, err := s.CreateService(ctx, svc)
	require.NoError(t, err)
	assert.False(t, created.IsActive)
	assert.Equal(t, svc.Name, created.Name)

	stored, err := s.Service(created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	hall := uuid.New()
	e, err := s.CreateEvent(ctx, sampleEvent(hall))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{hall}, e.HallIDs)
	assert.Equal(t, []uuid.UUID{hall}, s.Snapshot().Events[0].HallIDs)
}
