package store

import "context"

// Persister stores applied commands outside the process. Persist is called
// with the state the command produced, before that state is published.
type Persister interface {
	Persist(ctx context.Context, cmd Command, next HotelState, res Result) error
	Load(ctx context.Context) (HotelState, error)
}

// NopPersister keeps everything in memory.
type NopPersister struct{}

func (NopPersister) Persist(context.Context, Command, HotelState, Result) error { return nil }

func (NopPersister) Load(context.Context) (HotelState, error) { return HotelState{}, nil }
