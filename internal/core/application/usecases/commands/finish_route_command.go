package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrFinishRouteCommandIsNotConstructed = errors.New(
	"FinishRouteCommand must be created via NewFinishRouteCommand constructor",
)

// FinishRouteCommand closes a route. Finishing an already finished route is a no-op.
type FinishRouteCommand struct {
	routeID int64

	guard guard.ConstructorGuard
}

func NewFinishRouteCommand(routeID int64) (FinishRouteCommand, error) {
	if err := validateID("route_id", routeID, ErrRouteIDIsInvalid); err != nil {
		return FinishRouteCommand{}, err
	}

	return FinishRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishRouteCommand) Validate() error {
	return c.guard.Validate(ErrFinishRouteCommandIsNotConstructed)
}

func (c FinishRouteCommand) RouteID() int64 {
	return c.routeID
}
