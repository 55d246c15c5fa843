package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrDeleteRouteCommandIsNotConstructed = errors.New(
	"DeleteRouteCommand must be created via NewDeleteRouteCommand constructor",
)

// DeleteRouteCommand removes a route after returning its stops to the unassigned pool.
type DeleteRouteCommand struct {
	routeID int64

	guard guard.ConstructorGuard
}

func NewDeleteRouteCommand(routeID int64) (DeleteRouteCommand, error) {
	if err := validateID("route_id", routeID, ErrRouteIDIsInvalid); err != nil {
		return DeleteRouteCommand{}, err
	}

	return DeleteRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRouteCommandIsNotConstructed)
}

func (c DeleteRouteCommand) RouteID() int64 {
	return c.routeID
}
