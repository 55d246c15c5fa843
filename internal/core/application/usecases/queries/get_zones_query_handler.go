package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetZonesQueryHandler struct {
	db *gorm.DB
}

func NewGetZonesQueryHandler(db *gorm.DB) GetZonesQueryHandler {
	return GetZonesQueryHandler{db: db}
}

func (h GetZonesQueryHandler) Handle(ctx context.Context, query GetZonesQuery) ([]ZoneView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price_multiplier
		FROM zones
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]ZoneView, 0)
	for rows.Next() {
		var z ZoneView
		if err = rows.Scan(&z.ID, &z.Name, &z.PriceMultiplier); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
