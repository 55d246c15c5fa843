package services

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stop"
)

var (
	// ErrEmptyRoute is returned when there is nothing to sequence.
	ErrEmptyRoute = errors.New("route has no stops to sequence")

	// ErrNoAssignableStops is returned when stops were given but none could be placed.
	ErrNoAssignableStops = errors.New("no stop could be sequenced")
)

const (
	// AlgorithmGeographic labels a sequence built from at least one geolocated stop.
	AlgorithmGeographic = "nearest-neighbor+2opt"

	// AlgorithmFallback labels a sequence built only from zone and address ordering.
	AlgorithmFallback = "zone+address"
)

// DefaultDepot is the origin used when none is configured: central San Miguel de Tucumán.
var DefaultDepot = kernel.NewCoordinate(-26.8241, -65.2226)

// SequencedStop is a stop with its new 1-based position.
type SequencedStop struct {
	Stop     *stop.Stop
	Position int
}

// SequenceMetadata describes how a sequence was produced.
type SequenceMetadata struct {
	Algorithm       string
	TotalStops      int
	GeolocatedStops int
	UnlocatedStops  int

	// TotalDistanceKm covers the geolocated part only, rounded to 2 decimals.
	TotalDistanceKm float64

	Origin kernel.Coordinate
}

// Sequence is the visiting order computed for a route.
type Sequence struct {
	Stops    []SequencedStop
	Metadata SequenceMetadata
}

// StopIDs returns stop ids in visiting order.
func (s Sequence) StopIDs() []int64 {
	ids := make([]int64, len(s.Stops))
	for i, ss := range s.Stops {
		ids[i] = ss.Stop.ID()
	}
	return ids
}

// RouteSequencer orders a route's stops for driving.
//
// Geolocated stops come first, in a nearest-neighbor tour from the origin improved by
// 2-opt. Stops without a usable coordinate follow, ordered by zone and address.
// Sequencing is pure: stops are read, never modified, and positions are only reported.
//
// Example usage:
//
//	sequencer, _ := services.NewRouteSequencer(services.DefaultDepot,
//	    services.NewTwoOptRefiner(8), services.NewFallbackOrderer(language.Spanish))
//	seq, err := sequencer.Sequence(r.Stops(), kernel.Unset)
//	if errors.Is(err, services.ErrEmptyRoute) {
//	    // nothing assigned yet
//	}
type RouteSequencer struct {
	depot    kernel.Coordinate
	refiner  TwoOptRefiner
	fallback FallbackOrderer
}

// NewRouteSequencer validates the depot and returns a sequencer.
func NewRouteSequencer(depot kernel.Coordinate, refiner TwoOptRefiner, fallback FallbackOrderer) (RouteSequencer, error) {
	if !depot.IsUsable() {
		return RouteSequencer{}, fmt.Errorf("depot %s is not a usable coordinate", depot)
	}
	return RouteSequencer{
		depot:    depot,
		refiner:  refiner,
		fallback: fallback,
	}, nil
}

// Depot returns the configured default origin.
func (r RouteSequencer) Depot() kernel.Coordinate {
	return r.depot
}

// ResolveOrigin returns override when it is usable and the configured depot otherwise.
func (r RouteSequencer) ResolveOrigin(override kernel.Coordinate) kernel.Coordinate {
	if override.IsUsable() {
		return override
	}
	return r.depot
}

// Sequence computes the visiting order of stops. Pass kernel.Unset as origin to start
// from the configured depot.
func (r RouteSequencer) Sequence(stops []*stop.Stop, origin kernel.Coordinate) (Sequence, error) {
	if len(stops) == 0 {
		return Sequence{}, ErrEmptyRoute
	}
	for _, s := range stops {
		if err := s.Validate(); err != nil {
			return Sequence{}, err
		}
	}

	start := r.ResolveOrigin(origin)

	geolocated, unlocated := PartitionByCoordinate(stops)

	points := Coordinates(geolocated)
	tour := r.refiner.Refine(start, points, NearestNeighborTour(start, points))
	ordered := Permute(geolocated, tour)
	distance := tourDistanceKm(start, points, tour)

	ordered = append(ordered, r.fallback.Order(unlocated)...)
	if len(ordered) == 0 {
		return Sequence{}, ErrNoAssignableStops
	}

	sequenced := make([]SequencedStop, len(ordered))
	for i, s := range ordered {
		sequenced[i] = SequencedStop{Stop: s, Position: i + 1}
	}

	algorithm := AlgorithmFallback
	if len(geolocated) > 0 {
		algorithm = AlgorithmGeographic
	}

	return Sequence{
		Stops: sequenced,
		Metadata: SequenceMetadata{
			Algorithm:       algorithm,
			TotalStops:      len(stops),
			GeolocatedStops: len(geolocated),
			UnlocatedStops:  len(unlocated),
			TotalDistanceKm: roundKm(distance),
			Origin:          start,
		},
	}, nil
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
