package stoprepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStopRepository implements ports.StopRepository using GORM.
type GormStopRepository struct {
	db *gorm.DB
}

// NewGormStopRepository creates a stop repository on db, which may be a transaction.
func NewGormStopRepository(db *gorm.DB) *GormStopRepository {
	return &GormStopRepository{db: db}
}

// Add inserts a new stop and attaches the generated id.
func (r *GormStopRepository) Add(ctx context.Context, s *stop.Stop) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Omit("Zone").Create(&dto).Error; err != nil {
		return pgerr.Translate("insert stop", err)
	}

	return s.AttachID(dto.ID)
}

// Update writes route, position and status of an existing stop.
func (r *GormStopRepository) Update(ctx context.Context, s *stop.Stop) error {
	if err := s.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&StopDTO{}).
		Where("id = ?", s.ID()).
		Updates(placement(s))
	if result.Error != nil {
		return pgerr.Translate("update stop", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stop", s.ID())
	}

	return nil
}

// Get retrieves a stop with its zone name.
func (r *GormStopRepository) Get(ctx context.Context, id int64) (*stop.Stop, error) {
	var dto StopDTO
	if err := r.db.WithContext(ctx).Preload("Zone").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stop", id)
		}
		return nil, pgerr.Translate("get stop", err)
	}

	return ToDomain(dto)
}

// GetForUpdate locks the stops in ascending id order and returns them in the order of ids.
func (r *GormStopRepository) GetForUpdate(ctx context.Context, ids []int64) ([]*stop.Stop, error) {
	if len(ids) == 0 {
		return []*stop.Stop{}, nil
	}

	var dtos []StopDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Zone").
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate("lock stops", err)
	}

	byID := make(map[int64]StopDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	stops := make([]*stop.Stop, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("stop", id)
		}
		s, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}

	return stops, nil
}

// GetUnassigned lists stops without a route, oldest first.
func (r *GormStopRepository) GetUnassigned(ctx context.Context) ([]*stop.Stop, error) {
	var dtos []StopDTO
	if err := r.db.WithContext(ctx).
		Preload("Zone").
		Where("route_id IS NULL").
		Order("id ASC").
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate("list unassigned stops", err)
	}

	stops := make([]*stop.Stop, 0, len(dtos))
	for _, dto := range dtos {
		s, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}

	return stops, nil
}

// UpdatePositions numbers orderedIDs 1..N. Each id must match exactly one stop of routeID.
func (r *GormStopRepository) UpdatePositions(ctx context.Context, routeID int64, orderedIDs []int64) error {
	db := r.db.WithContext(ctx)
	for i, id := range orderedIDs {
		result := db.Model(&StopDTO{}).
			Where("id = ? AND route_id = ?", id, routeID).
			Update("position", i+1)
		if result.Error != nil {
			return pgerr.Translate("update stop positions", result.Error)
		}
		if result.RowsAffected != 1 {
			return errs.NewPersistenceError("update stop positions",
				fmt.Errorf("stop %d is not on route %d", id, routeID))
		}
	}
	return nil
}

// UpdateStatuses moves the listed stops that are currently in from to to.
func (r *GormStopRepository) UpdateStatuses(ctx context.Context, ids []int64, from, to stop.Status) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&StopDTO{}).
		Where("id IN ? AND status = ?", ids, from.String()).
		Update("status", to.String()).Error
	return pgerr.Translate("update stop statuses", err)
}

// DetachFromRoute turns every stop of routeID back into an unassigned pending stop.
func (r *GormStopRepository) DetachFromRoute(ctx context.Context, routeID int64) error {
	err := r.db.WithContext(ctx).
		Model(&StopDTO{}).
		Where("route_id = ?", routeID).
		Updates(map[string]any{
			"route_id": nil,
			"position": 0,
			"status":   stop.Pending.String(),
		}).Error
	return pgerr.Translate("detach stops", err)
}
