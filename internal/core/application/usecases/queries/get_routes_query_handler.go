package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRoutesQueryHandler reads routes and their stops in two statements.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle returns routes ordered by scheduled date (newest first) then id. Each route's
// stops are ordered by position. Routes without stops carry an empty slice.
func (h GetRoutesQueryHandler) Handle(ctx context.Context, query GetRoutesQuery) ([]RouteView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes, err := h.loadRoutes(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return routes, nil
	}

	index := make(map[int64]int, len(routes))
	ids := make([]int64, 0, len(routes))
	for i, r := range routes {
		index[r.ID] = i
		ids = append(ids, r.ID)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+stopColumns+`
		FROM stops s
		LEFT JOIN zones z ON z.id = s.zone_id
		WHERE s.route_id IN ?
		ORDER BY s.route_id, s.position, s.id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		v, scanErr := scanStop(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		i := index[*v.RouteID]
		routes[i].Stops = append(routes[i].Stops, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}

func (h GetRoutesQueryHandler) loadRoutes(ctx context.Context, query GetRoutesQuery) ([]RouteView, error) {
	db := h.db.WithContext(ctx)

	sqlQuery := `
		SELECT id, scheduled_date, driver_name, status
		FROM routes`
	var args []any
	if date := query.Date(); date != nil {
		sqlQuery += `
		WHERE scheduled_date = ?`
		args = append(args, *date)
	}
	sqlQuery += `
		ORDER BY scheduled_date DESC, id`

	rows, err := db.Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteView, 0)
	for rows.Next() {
		v := RouteView{Stops: make([]StopView, 0)}
		if err = rows.Scan(&v.ID, &v.ScheduledDate, &v.DriverName, &v.Status); err != nil {
			return nil, err
		}
		routes = append(routes, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
