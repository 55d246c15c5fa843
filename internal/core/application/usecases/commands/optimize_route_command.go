package commands

import (
	"errors"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrOptimizeRouteCommandIsNotConstructed = errors.New(
	"OptimizeRouteCommand must be created via NewOptimizeRouteCommand constructor",
)

// OptimizeRouteCommand asks for a new visiting order of a route's stops.
//
// An origin can be supplied to start the tour somewhere other than the configured
// depot. Pass nil for both coordinates to use the depot; an origin of (0, 0) is
// accepted but ignored, like any unusable coordinate.
//
// Example:
//
//	lat, lng := -26.83, -65.20
//	cmd, err := NewOptimizeRouteCommand(routeID, &lat, &lng)
//	seq, err := handler.Handle(ctx, cmd)
type OptimizeRouteCommand struct {
	routeID int64
	origin  kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewOptimizeRouteCommand validates the route id and, when given, the origin. Latitude
// and longitude must be given together and lie within [-90, 90] and [-180, 180].
func NewOptimizeRouteCommand(routeID int64, startLat, startLng *float64) (OptimizeRouteCommand, error) {
	cmd := OptimizeRouteCommand{
		origin: kernel.Unset,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateID("route_id", routeID, ErrRouteIDIsInvalid),
		cmd.setOrigin(startLat, startLng),
	); err != nil {
		return OptimizeRouteCommand{}, err
	}
	cmd.routeID = routeID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeRouteCommandIsNotConstructed)
}

func (c OptimizeRouteCommand) RouteID() int64 {
	return c.routeID
}

// Origin returns the requested start, or kernel.Unset for the depot.
func (c OptimizeRouteCommand) Origin() kernel.Coordinate {
	return c.origin
}

func (c *OptimizeRouteCommand) setOrigin(lat, lng *float64) error {
	coordinate, err := parseCoordinate("start_lat", "start_lng", lat, lng)
	if err != nil {
		return err
	}
	c.origin = coordinate
	return nil
}

// parseCoordinate turns an optional lat/lng pair into a coordinate. Both nil yields kernel.Unset.
func parseCoordinate(latName, lngName string, lat, lng *float64) (kernel.Coordinate, error) {
	switch {
	case lat == nil && lng == nil:
		return kernel.Unset, nil
	case lat == nil:
		return kernel.Unset, errs.NewValueIsRequiredError(latName)
	case lng == nil:
		return kernel.Unset, errs.NewValueIsRequiredError(lngName)
	}

	var rangeErrs []error
	if math.IsNaN(*lat) || *lat < -90 || *lat > 90 {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError(latName, *lat, -90, 90))
	}
	if math.IsNaN(*lng) || *lng < -180 || *lng > 180 {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError(lngName, *lng, -180, 180))
	}
	if err := errors.Join(rangeErrs...); err != nil {
		return kernel.Unset, err
	}

	return kernel.NewCoordinate(*lat, *lng), nil
}
