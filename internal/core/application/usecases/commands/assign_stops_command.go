package commands

import (
	"errors"
	"fmt"
	"slices"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignStopsCommandIsNotConstructed = errors.New(
	"AssignStopsCommand must be created via NewAssignStopsCommand constructor",
)

// AssignStopsCommand appends unassigned stops to the end of a route.
//
// Example:
//
//	cmd, err := NewAssignStopsCommand(routeID, []int64{14, 15, 21})
//	if err != nil {
//	    return err // empty list, non-positive or duplicated ids
//	}
//	r, err := handler.Handle(ctx, cmd)
type AssignStopsCommand struct {
	routeID int64
	stopIDs []int64

	guard guard.ConstructorGuard
}

// NewAssignStopsCommand rejects an empty list, non-positive ids and duplicates.
func NewAssignStopsCommand(routeID int64, stopIDs []int64) (AssignStopsCommand, error) {
	cmd := AssignStopsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateID("route_id", routeID, ErrRouteIDIsInvalid),
		cmd.setStopIDs(stopIDs),
	); err != nil {
		return AssignStopsCommand{}, err
	}
	cmd.routeID = routeID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignStopsCommand) Validate() error {
	return c.guard.Validate(ErrAssignStopsCommandIsNotConstructed)
}

func (c AssignStopsCommand) RouteID() int64 {
	return c.routeID
}

// StopIDs returns the stops to append, in request order.
func (c AssignStopsCommand) StopIDs() []int64 {
	return slices.Clone(c.stopIDs)
}

func (c *AssignStopsCommand) setStopIDs(stopIDs []int64) error {
	if len(stopIDs) == 0 {
		return errs.NewValueIsRequiredError("stop_ids")
	}

	seen := make(map[int64]struct{}, len(stopIDs))
	for _, id := range stopIDs {
		if id <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("stop_ids", fmt.Errorf("%w: got %d", ErrStopIDIsInvalid, id))
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("stop_ids", fmt.Errorf("stop %d is listed twice", id))
		}
		seen[id] = struct{}{}
	}

	c.stopIDs = slices.Clone(stopIDs)
	return nil
}
