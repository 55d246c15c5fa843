package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand puts a scheduled route on the road.
type StartRouteCommand struct {
	routeID int64

	guard guard.ConstructorGuard
}

func NewStartRouteCommand(routeID int64) (StartRouteCommand, error) {
	if err := validateID("route_id", routeID, ErrRouteIDIsInvalid); err != nil {
		return StartRouteCommand{}, err
	}

	return StartRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

func (c StartRouteCommand) RouteID() int64 {
	return c.routeID
}
