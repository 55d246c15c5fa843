package routerepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a route repository on db, which may be a transaction.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add inserts a new route row and attaches the generated id. Stops are not written.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Translate("insert route", err)
	}

	return aggregate.AttachID(dto.ID)
}

// Update writes the route's driver, date and status.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"scheduled_date": dto.ScheduledDate,
			"driver_name":    dto.DriverName,
			"status":         dto.Status,
		})
	if result.Error != nil {
		return pgerr.Translate("update route", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", aggregate.ID())
	}

	return nil
}

// Get retrieves a route with its stops ordered by position.
func (r *GormRouteRepository) Get(ctx context.Context, id int64) (*route.Route, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate is Get with the route row locked FOR UPDATE until the transaction ends.
func (r *GormRouteRepository) GetForUpdate(ctx context.Context, id int64) (*route.Route, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Delete removes the route row.
func (r *GormRouteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&RouteDTO{}, id)
	if result.Error != nil {
		return pgerr.Translate("delete route", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", id)
	}

	return nil
}

func (r *GormRouteRepository) get(db *gorm.DB, id int64) (*route.Route, error) {
	var dto RouteDTO
	err := db.
		Preload("Stops", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC, id ASC")
		}).
		Preload("Stops.Zone").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id)
		}
		return nil, pgerr.Translate("get route", err)
	}

	return toDomain(dto)
}
