package store

import (
	"hotelpro-backend/models"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_DoesNotMutateInput(t *testing.T) {
	hall := uuid.New()
	e := sampleEvent(hall)
	e.ID = uuid.New()

	base, _, err := Apply(HotelState{}, CreateEvent{Event: e}, epoch)
	require.NoError(t, err)
	before := base.Clone()

	changed := base.Events[0].Clone()
	changed.Name = "Renamed"
	changed.HallIDs[0] = uuid.New()

	commands := []Command{
		UpdateEvent{Event: changed},
		DeleteEvent{ID: e.ID},
		CreateService{Service: models.AdditionalService{ID: uuid.New(), Name: "x"}},
		Seed{Data: DefaultSeed(uuid.New)},
	}
	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			next, _, err := Apply(base, cmd, epoch.Add(time.Hour))
			require.NoError(t, err)
			assert.NotEqual(t, before, next)
			assert.Equal(t, before, base)
		})
	}
}

func TestApply_CreateRequiresID(t *testing.T) {
	_, _, err := Apply(HotelState{}, CreateEvent{Event: sampleEvent(uuid.New())}, epoch)
	assert.ErrorIs(t, err, ErrMissingID)

	_, _, err = Apply(HotelState{}, CreateService{Service: sampleService()}, epoch)
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestApply_UpdateKeepsCreatedAt(t *testing.T) {
	svc := sampleService()
	svc.ID = uuid.New()

	st, _, err := Apply(HotelState{}, CreateService{Service: svc}, epoch)
	require.NoError(t, err)

	svc.UnitPrice = 9
	svc.CreatedAt = epoch.Add(72 * time.Hour)
	st, res, err := Apply(st, UpdateService{Service: svc}, epoch.Add(time.Hour))
	require.NoError(t, err)

	require.NotNil(t, res.Service)
	assert.Equal(t, epoch, res.Service.CreatedAt)
	assert.Equal(t, epoch.Add(time.Hour), res.Service.UpdatedAt)
	assert.Equal(t, 9.0, st.AdditionalServices[0].UnitPrice)
}

func TestApply_DeleteMissingIsNoop(t *testing.T) {
	st := DefaultSeed(uuid.New)
	next, res, err := Apply(st, DeleteService{ID: uuid.New()}, epoch)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Affected)
	assert.Equal(t, st, next)
}

func TestApply_SeedFillsOnlyEmptyCollections(t *testing.T) {
	own := models.Hall{ID: uuid.New(), Name: "Rooftop", Capacity: 80, IsActive: true}
	st := HotelState{Halls: []models.Hall{own}}

	seed := DefaultSeed(uuid.New)
	next, res, err := Apply(st, Seed{Data: seed}, epoch)
	require.NoError(t, err)

	assert.Equal(t, []models.Hall{own}, next.Halls)
	assert.Len(t, next.EventPackages, len(seed.EventPackages))
	assert.Len(t, next.AdditionalServices, len(seed.AdditionalServices))
	assert.Equal(t, len(seed.EventPackages)+len(seed.AdditionalServices), res.Affected)
	for _, a := range next.AdditionalServices {
		assert.Equal(t, epoch, a.CreatedAt)
	}
}

func TestDefaultSeed_PackagesReferenceSeededServices(t *testing.T) {
	seed := DefaultSeed(uuid.New)
	ids := map[uuid.UUID]bool{}
	for _, a := range seed.AdditionalServices {
		ids[a.ID] = true
	}
	for _, p := range seed.EventPackages {
		for _, id := range p.ServiceIDs {
			assert.True(t, ids[id], "package %s references unknown service", p.Name)
		}
	}
}
