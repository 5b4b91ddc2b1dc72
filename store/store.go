package store

import (
	"context"
	"fmt"
	"hotelpro-backend/models"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Observer is told about every dispatched command.
type Observer interface {
	ObserveCommand(command string, err error)
	ObserveState(s HotelState)
}

// Store owns the current HotelState. It is safe for concurrent use; all
// mutations go through Dispatch and are applied one at a time.
type Store struct {
	mu        sync.RWMutex
	state     HotelState
	persister Persister
	observer  Observer
	log       *zap.Logger
	now       func() time.Time
	newID     func() uuid.UUID
}

type Option func(*Store)

func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(f func() uuid.UUID) Option {
	return func(s *Store) { s.newID = f }
}

// WithState starts the store from an existing snapshot.
func WithState(st HotelState) Option {
	return func(s *Store) { s.state = st.Clone() }
}

func New(opts ...Option) *Store {
	s := &Store{
		persister: NopPersister{},
		log:       zap.NewNop(),
		now:       time.Now,
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies cmd, persists it and publishes the new state. When
// persisting fails the previous state is kept.
func (s *Store) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(ctx, cmd)
}

// dispatchLocked runs cmd with s.mu already held for writing.
func (s *Store) dispatchLocked(ctx context.Context, cmd Command) (Result, error) {
	next, res, err := Apply(s.state, cmd, s.now())
	if err == nil {
		if perr := s.persister.Persist(ctx, cmd, next.Clone(), res.clone()); perr != nil {
			err = fmt.Errorf("persist %s: %w", cmd.Name(), perr)
		}
	}
	if s.observer != nil {
		s.observer.ObserveCommand(cmd.Name(), err)
	}
	if err != nil {
		s.log.Warn("command rejected", zap.String("command", cmd.Name()), zap.Error(err))
		return Result{}, err
	}

	s.state = next
	if s.observer != nil {
		s.observer.ObserveState(next)
	}
	s.log.Debug("command applied", zap.String("command", cmd.Name()), zap.Int("affected", res.Affected))
	return res, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() HotelState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Load replaces the in-memory state with what the persister holds.
func (s *Store) Load(ctx context.Context) error {
	st, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	s.mu.Lock()
	s.state = st.Clone()
	s.mu.Unlock()
	if s.observer != nil {
		s.observer.ObserveState(st)
	}
	return nil
}

// NeedsSeed reports whether halls or event packages are missing.
func (s *Store) NeedsSeed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Halls) == 0 || len(s.state.EventPackages) == 0
}

// InitializeData seeds the default venue data. Callers check NeedsSeed
// first; collections that are already populated are not touched.
func (s *Store) InitializeData(ctx context.Context) error {
	res, err := s.Dispatch(ctx, Seed{Data: DefaultSeed(s.newID)})
	if err != nil {
		return err
	}
	s.log.Info("seeded venue data", zap.Int("records", res.Affected))
	return nil
}

func (s *Store) CreateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = s.newID()
	res, err := s.Dispatch(ctx, CreateEvent{Event: e})
	if err != nil {
		return models.Event{}, err
	}
	return *res.Event, nil
}

func (s *Store) UpdateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	res, err := s.Dispatch(ctx, UpdateEvent{Event: e})
	if err != nil {
		return models.Event{}, err
	}
	return *res.Event, nil
}

// ModifyEvent reads the current event and applies change to it while
// holding the write lock, so no other mutation can slip in between. When
// change returns false nothing is written and the event is returned as is.
func (s *Store) ModifyEvent(ctx context.Context, id uuid.UUID, change func(*models.Event) bool) (models.Event, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Event{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.eventIndex(id)
	if i < 0 {
		return models.Event{}, false, fmt.Errorf("modify event %s: %w", id, ErrNotFound)
	}
	e := s.state.Events[i].Clone()
	if !change(&e) {
		return s.state.Events[i].Clone(), false, nil
	}
	e.ID = id
	e.UpdatedAt = time.Time{}
	res, err := s.dispatchLocked(ctx, UpdateEvent{Event: e})
	if err != nil {
		return models.Event{}, false, err
	}
	return *res.Event, true, nil
}

// DeleteEvent removes the event and reports whether it existed.
func (s *Store) DeleteEvent(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.Dispatch(ctx, DeleteEvent{ID: id})
	return res.Affected > 0, err
}

func (s *Store) CreateService(ctx context.Context, a models.AdditionalService) (models.AdditionalService, error) {
	a.ID = s.newID()
	res, err := s.Dispatch(ctx, CreateService{Service: a})
	if err != nil {
		return models.AdditionalService{}, err
	}
	return *res.Service, nil
}

func (s *Store) UpdateService(ctx context.Context, a models.AdditionalService) (models.AdditionalService, error) {
	res, err := s.Dispatch(ctx, UpdateService{Service: a})
	if err != nil {
		return models.AdditionalService{}, err
	}
	return *res.Service, nil
}

// ModifyService is the additional service counterpart of ModifyEvent.
func (s *Store) ModifyService(ctx context.Context, id uuid.UUID, change func(*models.AdditionalService) bool) (models.AdditionalService, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.AdditionalService{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.serviceIndex(id)
	if i < 0 {
		return models.AdditionalService{}, false, fmt.Errorf("modify service %s: %w", id, ErrNotFound)
	}
	a := s.state.AdditionalServices[i]
	if !change(&a) {
		return s.state.AdditionalServices[i], false, nil
	}
	a.ID = id
	a.UpdatedAt = time.Time{}
	res, err := s.dispatchLocked(ctx, UpdateService{Service: a})
	if err != nil {
		return models.AdditionalService{}, false, err
	}
	return *res.Service, true, nil
}

func (s *Store) DeleteService(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.Dispatch(ctx, DeleteService{ID: id})
	return res.Affected > 0, err
}

func (s *Store) Event(id uuid.UUID) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.state.eventIndex(id)
	if i < 0 {
		return models.Event{}, ErrNotFound
	}
	return s.state.Events[i].Clone(), nil
}

func (s *Store) Service(id uuid.UUID) (models.AdditionalService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.state.serviceIndex(id)
	if i < 0 {
		return models.AdditionalService{}, ErrNotFound
	}
	return s.state.AdditionalServices[i], nil
}

func (s *Store) Halls() []models.Hall {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Halls)
}

func (s *Store) ActiveHalls() []models.Hall {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveHalls()
}
