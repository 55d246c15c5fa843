package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnassignedStopsQueryHandler lists stops without a route, oldest first.
type GetUnassignedStopsQueryHandler struct {
	db *gorm.DB
}

func NewGetUnassignedStopsQueryHandler(db *gorm.DB) GetUnassignedStopsQueryHandler {
	return GetUnassignedStopsQueryHandler{db: db}
}

func (h GetUnassignedStopsQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedStopsQuery,
) ([]StopView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + stopColumns + `
		FROM stops s
		LEFT JOIN zones z ON z.id = s.zone_id
		WHERE s.route_id IS NULL
		ORDER BY s.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stops := make([]StopView, 0)
	for rows.Next() {
		v, scanErr := scanStop(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		stops = append(stops, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}
