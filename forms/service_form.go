package forms

import (
	"context"
	"errors"
	"fmt"
	"hotelpro-backend/models"
	"hotelpro-backend/query"
	"hotelpro-backend/store"
	"strings"

	"github.com/google/uuid"
)

type ServiceStore interface {
	Snapshot() store.HotelState
	Service(id uuid.UUID) (models.AdditionalService, error)
	CreateService(ctx context.Context, a models.AdditionalService) (models.AdditionalService, error)
	UpdateService(ctx context.Context, a models.AdditionalService) (models.AdditionalService, error)
	ModifyService(ctx context.Context, id uuid.UUID, change func(*models.AdditionalService) bool) (models.AdditionalService, bool, error)
	DeleteService(ctx context.Context, id uuid.UUID) (bool, error)
}

type ServiceDraft struct {
	Name        string
	Description string
	Category    models.ServiceCategory
	UnitPrice   float64
	Unit        models.ServiceUnit
	MinQuantity int
	MaxQuantity int
	IsActive    bool
}

func DefaultServiceDraft() ServiceDraft {
	return ServiceDraft{
		Category:    models.CategoryOther,
		Unit:        models.UnitPerHour,
		MinQuantity: 1,
		MaxQuantity: 100,
		IsActive:    true,
	}
}

func ServiceDraftFrom(a models.AdditionalService) ServiceDraft {
	return ServiceDraft{
		Name:        a.Name,
		Description: a.Description,
		Category:    a.Category,
		UnitPrice:   a.UnitPrice,
		Unit:        a.Unit,
		MinQuantity: a.MinQuantity,
		MaxQuantity: a.MaxQuantity,
		IsActive:    a.IsActive,
	}
}

func (d ServiceDraft) applyTo(a models.AdditionalService) models.AdditionalService {
	a.Name = strings.TrimSpace(d.Name)
	a.Description = strings.TrimSpace(d.Description)
	a.Category = d.Category
	a.UnitPrice = d.UnitPrice
	a.Unit = d.Unit
	a.MinQuantity = d.MinQuantity
	a.MaxQuantity = d.MaxQuantity
	a.IsActive = d.IsActive
	return a
}

func ValidateServiceDraft(d ServiceDraft) error {
	v := &ValidationError{Message: "Please fill in all required fields with valid values"}

	if strings.TrimSpace(d.Name) == "" {
		v.add("name", "Service name is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		v.add("description", "Description is required")
	}
	if d.UnitPrice <= 0 {
		v.add("unitPrice", "Unit price must be greater than zero")
	}
	if !d.Category.Valid() {
		v.add("category", "Invalid category")
	}
	if !d.Unit.Valid() {
		v.add("unit", "Invalid unit")
	}
	if d.MinQuantity < 1 {
		v.add("minQuantity", "Minimum quantity must be at least 1")
	}
	if d.MaxQuantity < 1 {
		v.add("maxQuantity", "Maximum quantity must be at least 1")
	} else if d.MaxQuantity < d.MinQuantity {
		v.add("maxQuantity", "Maximum quantity cannot be less than minimum quantity")
	}
	return v.orNil()
}

// ServiceForm drives the additional services screen.
type ServiceForm struct {
	machine
	store    ServiceStore
	selected *models.AdditionalService

	Draft  ServiceDraft
	Errors map[string]string
}

func NewServiceForm(s ServiceStore) *ServiceForm {
	return &ServiceForm{store: s}
}

func (f *ServiceForm) Selected() (models.AdditionalService, bool) {
	if f.selected == nil {
		return models.AdditionalService{}, false
	}
	return *f.selected, true
}

func (f *ServiceForm) OpenCreate() error {
	if err := f.open(ModeCreate); err != nil {
		return err
	}
	f.selected = nil
	f.Draft = DefaultServiceDraft()
	f.Errors = nil
	return nil
}

func (f *ServiceForm) OpenEdit(id uuid.UUID) error {
	return f.openExisting(ModeEdit, id)
}

func (f *ServiceForm) OpenView(id uuid.UUID) error {
	return f.openExisting(ModeView, id)
}

func (f *ServiceForm) openExisting(mode Mode, id uuid.UUID) error {
	if f.Mode() != ModeList {
		return ErrInvalidTransition
	}
	a, err := f.store.Service(id)
	if err != nil {
		return err
	}
	if err := f.open(mode); err != nil {
		return err
	}
	f.selected = &a
	f.Draft = ServiceDraftFrom(a)
	f.Errors = nil
	return nil
}

func (f *ServiceForm) Close() {
	f.reset()
	f.selected = nil
	f.Draft = ServiceDraft{}
	f.Errors = nil
}

func (f *ServiceForm) Submit(ctx context.Context) (models.AdditionalService, error) {
	if err := f.editable(); err != nil {
		return models.AdditionalService{}, err
	}

	if err := ValidateServiceDraft(f.Draft); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			f.Errors = verr.Fields
		}
		return models.AdditionalService{}, err
	}
	f.Errors = nil

	var (
		saved models.AdditionalService
		err   error
	)
	if f.Mode() == ModeEdit {
		saved, err = f.store.UpdateService(ctx, f.Draft.applyTo(*f.selected))
	} else {
		saved, err = f.store.CreateService(ctx, f.Draft.applyTo(models.AdditionalService{}))
	}
	if err != nil {
		return models.AdditionalService{}, fmt.Errorf("save additional service: %w", err)
	}

	f.Close()
	return saved, nil
}

func (f *ServiceForm) Delete(ctx context.Context, id uuid.UUID, confirm Confirm[models.AdditionalService]) (bool, error) {
	a, err := f.store.Service(id)
	if err != nil {
		return false, err
	}
	if confirm == nil || !confirm(a) {
		return false, nil
	}
	removed, err := f.store.DeleteService(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete additional service: %w", err)
	}
	f.Close()
	return removed, nil
}

// ToggleActive flips whether the service can be booked. It works from the
// list and does not touch an open draft.
func (f *ServiceForm) ToggleActive(ctx context.Context, id uuid.UUID) (models.AdditionalService, error) {
	saved, _, err := f.store.ModifyService(ctx, id, func(a *models.AdditionalService) bool {
		a.IsActive = !a.IsActive
		return true
	})
	if err != nil {
		return models.AdditionalService{}, fmt.Errorf("toggle additional service: %w", err)
	}
	return saved, nil
}

func (f *ServiceForm) List(filter query.ServiceFilter) query.ServiceListView {
	return query.ServiceList(f.store.Snapshot().AdditionalServices, filter)
}
