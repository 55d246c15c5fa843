package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrRescheduleRouteCommandIsNotConstructed = errors.New(
	"RescheduleRouteCommand must be created via NewRescheduleRouteCommand constructor",
)

// RescheduleRouteCommand takes an in-progress route back to SCHEDULED.
type RescheduleRouteCommand struct {
	routeID int64

	guard guard.ConstructorGuard
}

func NewRescheduleRouteCommand(routeID int64) (RescheduleRouteCommand, error) {
	if err := validateID("route_id", routeID, ErrRouteIDIsInvalid); err != nil {
		return RescheduleRouteCommand{}, err
	}

	return RescheduleRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleRouteCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleRouteCommandIsNotConstructed)
}

func (c RescheduleRouteCommand) RouteID() int64 {
	return c.routeID
}
