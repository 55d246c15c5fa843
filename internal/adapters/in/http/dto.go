package http

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/core/domain/services"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewRoute struct {
	ScheduledDate openapi_types.Date `json:"scheduled_date"`
	DriverName    string             `json:"driver_name"`
}

// RoutePatch carries the fields to change; absent fields keep their value.
type RoutePatch struct {
	ScheduledDate *openapi_types.Date `json:"scheduled_date,omitempty"`
	DriverName    *string             `json:"driver_name,omitempty"`
}

type AssignStops struct {
	StopIDs []int64 `json:"stop_ids"`
}

type OptimizeRequest struct {
	StartLat *float64 `json:"start_lat,omitempty"`
	StartLng *float64 `json:"start_lng,omitempty"`
}

type NewStop struct {
	Address string   `json:"address"`
	ZoneID  *int64   `json:"zone_id,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// Stop is a stop as returned to clients. Lat and Lng are 0 for stops without a location.
type Stop struct {
	ID       int64   `json:"id"`
	Address  string  `json:"address"`
	ZoneID   *int64  `json:"zone_id"`
	Zone     *string `json:"zone"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RouteID  *int64  `json:"route_id"`
	Position int     `json:"position"`
	Status   string  `json:"status"`
}

type Route struct {
	ID            int64              `json:"id"`
	ScheduledDate openapi_types.Date `json:"scheduled_date"`
	DriverName    string             `json:"driver_name"`
	Status        string             `json:"status"`
	Stops         []Stop             `json:"stops"`
}

type Zone struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OptimizeMetadata struct {
	Algorithm       string     `json:"algorithm"`
	TotalStops      int        `json:"totalStops"`
	GeolocatedStops int        `json:"geolocatedStops"`
	UnlocatedStops  int        `json:"unlocatedStops"`
	TotalDistanceKm float64    `json:"totalDistanceKm"`
	Origin          Coordinate `json:"origin"`
}

type OptimizeResult struct {
	Stops    []Stop           `json:"stops"`
	Metadata OptimizeMetadata `json:"metadata"`
}

func stopFromDomain(s *stop.Stop) Stop {
	var zone *string
	if name := s.ZoneName(); name != "" {
		zone = &name
	}
	return Stop{
		ID:       s.ID(),
		Address:  s.Address(),
		ZoneID:   s.ZoneID(),
		Zone:     zone,
		Lat:      s.Coordinate().Lat(),
		Lng:      s.Coordinate().Lng(),
		RouteID:  s.RouteID(),
		Position: s.Position(),
		Status:   s.Status().String(),
	}
}

func routeFromDomain(r *route.Route) Route {
	stops := make([]Stop, 0, len(r.Stops()))
	for _, s := range r.Stops() {
		stops = append(stops, stopFromDomain(s))
	}
	return Route{
		ID:            r.ID(),
		ScheduledDate: openapi_types.Date{Time: r.ScheduledDate()},
		DriverName:    r.DriverName(),
		Status:        r.Status().String(),
		Stops:         stops,
	}
}

// optimizeResultFromSequence reports stops in their new order with the sequence's positions.
func optimizeResultFromSequence(seq services.Sequence) OptimizeResult {
	stops := make([]Stop, len(seq.Stops))
	for i, ss := range seq.Stops {
		stops[i] = stopFromDomain(ss.Stop)
		stops[i].Position = ss.Position
	}
	m := seq.Metadata
	return OptimizeResult{
		Stops: stops,
		Metadata: OptimizeMetadata{
			Algorithm:       m.Algorithm,
			TotalStops:      m.TotalStops,
			GeolocatedStops: m.GeolocatedStops,
			UnlocatedStops:  m.UnlocatedStops,
			TotalDistanceKm: m.TotalDistanceKm,
			Origin:          Coordinate{Lat: m.Origin.Lat(), Lng: m.Origin.Lng()},
		},
	}
}

func stopFromView(v queries.StopView) Stop {
	return Stop{
		ID:       v.ID,
		Address:  v.Address,
		ZoneID:   v.ZoneID,
		Zone:     v.ZoneName,
		Lat:      v.Lat,
		Lng:      v.Lng,
		RouteID:  v.RouteID,
		Position: v.Position,
		Status:   v.Status,
	}
}

func routeFromView(v queries.RouteView) Route {
	stops := make([]Stop, len(v.Stops))
	for i, s := range v.Stops {
		stops[i] = stopFromView(s)
	}
	return Route{
		ID:            v.ID,
		ScheduledDate: openapi_types.Date{Time: v.ScheduledDate},
		DriverName:    v.DriverName,
		Status:        v.Status,
		Stops:         stops,
	}
}
