// Package queries contains read-only operations. Handlers read straight from the
// database with raw SQL and return flat views; they never load aggregates.
package queries

import (
	"database/sql"
	"time"
)

// StopView is a stop as listed to clients. Lat and Lng are 0 for stops without coordinates.
type StopView struct {
	ID       int64
	Address  string
	ZoneID   *int64
	ZoneName *string
	Lat      float64
	Lng      float64
	RouteID  *int64
	Position int
	Status   string
}

// RouteView is a route with its stops ordered by position.
type RouteView struct {
	ID            int64
	ScheduledDate time.Time
	DriverName    string
	Status        string
	Stops         []StopView
}

// ZoneView is a delivery zone.
type ZoneView struct {
	ID              int64
	Name            string
	PriceMultiplier float64
}

// stopColumns is the select list scanned by scanStop. It expects stops aliased as s
// and zones as z.
const stopColumns = `
	s.id,
	s.address,
	s.zone_id,
	z.name,
	s.lat,
	s.lng,
	s.route_id,
	s.position,
	s.status`

func scanStop(rows *sql.Rows, extra ...any) (StopView, error) {
	var (
		v        StopView
		zoneID   sql.NullInt64
		zoneName sql.NullString
		routeID  sql.NullInt64
	)

	dest := append(extra,
		&v.ID,
		&v.Address,
		&zoneID,
		&zoneName,
		&v.Lat,
		&v.Lng,
		&routeID,
		&v.Position,
		&v.Status,
	)
	if err := rows.Scan(dest...); err != nil {
		return StopView{}, err
	}

	if zoneID.Valid {
		v.ZoneID = &zoneID.Int64
	}
	if zoneName.Valid {
		v.ZoneName = &zoneName.String
	}
	if routeID.Valid {
		v.RouteID = &routeID.Int64
	}
	return v, nil
}
