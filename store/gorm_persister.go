package store

import (
	"context"
	"fmt"
	"hotelpro-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPersister writes every command through to a relational database.
// Rows carry a position column so Load restores insertion order.
type GormPersister struct {
	db *gorm.DB
}

func NewGormPersister(db *gorm.DB) *GormPersister {
	return &GormPersister{db: db}
}

// Migrate creates or updates the tables backing the store.
func (p *GormPersister) Migrate() error {
	return p.db.AutoMigrate(
		&models.Hall{},
		&models.Event{},
		&models.AdditionalService{},
		&models.EventPackage{},
	)
}

// Persist receives copies of the new state and result and may change them
// freely.
func (p *GormPersister) Persist(ctx context.Context, cmd Command, next HotelState, res Result) error {
	db := p.db.WithContext(ctx)

	switch c := cmd.(type) {
	case CreateEvent:
		pos, err := nextPosition(db, &models.Event{})
		if err != nil {
			return err
		}
		res.Event.Position = pos
		return db.Create(res.Event).Error
	case UpdateEvent:
		return db.Model(res.Event).Select("*").Omit("position").Updates(res.Event).Error
	case DeleteEvent:
		return db.Delete(&models.Event{}, "id = ?", c.ID).Error
	case CreateService:
		pos, err := nextPosition(db, &models.AdditionalService{})
		if err != nil {
			return err
		}
		res.Service.Position = pos
		return db.Create(res.Service).Error
	case UpdateService:
		return db.Model(res.Service).Select("*").Omit("position").Updates(res.Service).Error
	case DeleteService:
		return db.Delete(&models.AdditionalService{}, "id = ?", c.ID).Error
	case Seed:
		return db.Transaction(func(tx *gorm.DB) error {
			if err := seedRows(tx, next.Halls, func(h *models.Hall, pos int64) { h.Position = pos }); err != nil {
				return fmt.Errorf("halls: %w", err)
			}
			if err := seedRows(tx, next.AdditionalServices, func(a *models.AdditionalService, pos int64) { a.Position = pos }); err != nil {
				return fmt.Errorf("additional services: %w", err)
			}
			if err := seedRows(tx, next.EventPackages, func(pk *models.EventPackage, pos int64) { pk.Position = pos }); err != nil {
				return fmt.Errorf("event packages: %w", err)
			}
			return nil
		})
	}
	return fmt.Errorf("unsupported command %T", cmd)
}

// seedRows inserts rows after the ones already stored, skipping ids that
// exist.
func seedRows[T any](tx *gorm.DB, rows []T, setPosition func(*T, int64)) error {
	if len(rows) == 0 {
		return nil
	}
	base, err := nextPosition(tx, new(T))
	if err != nil {
		return err
	}
	for i := range rows {
		setPosition(&rows[i], base+int64(i))
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func nextPosition(db *gorm.DB, model any) (int64, error) {
	var last int64
	err := db.Model(model).Select("COALESCE(MAX(position), 0)").Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("read position: %w", err)
	}
	return last + 1, nil
}

func (p *GormPersister) Load(ctx context.Context) (HotelState, error) {
	db := p.db.WithContext(ctx)
	var st HotelState

	if err := db.Order("position ASC").Find(&st.Halls).Error; err != nil {
		return HotelState{}, fmt.Errorf("halls: %w", err)
	}
	if err := db.Order("position ASC").Find(&st.Events).Error; err != nil {
		return HotelState{}, fmt.Errorf("events: %w", err)
	}
	if err := db.Order("position ASC").Find(&st.AdditionalServices).Error; err != nil {
		return HotelState{}, fmt.Errorf("additional services: %w", err)
	}
	if err := db.Order("position ASC").Find(&st.EventPackages).Error; err != nil {
		return HotelState{}, fmt.Errorf("event packages: %w", err)
	}
	return st, nil
}
