package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var (
	// ErrNoStopsAssigned is returned when a route without stops is optimized.
	ErrNoStopsAssigned = errors.New("route has no stops assigned")

	ErrRouteIDIsInvalid = errors.New("route id must be a positive integer")
	ErrStopIDIsInvalid  = errors.New("stop id must be a positive integer")
)

func validateID(paramName string, id int64, sentinel error) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, sentinel)
	}
	return nil
}

// persistStatusChanges writes the stop status side effects of a route operation.
func persistStatusChanges(ctx context.Context, stopRepo ports.StopRepository, changes route.StopStatusChanges) error {
	if len(changes.Dispatched) > 0 {
		if err := stopRepo.UpdateStatuses(ctx, changes.Dispatched, stop.Pending, stop.InTransit); err != nil {
			return err
		}
	}
	if len(changes.Recalled) > 0 {
		if err := stopRepo.UpdateStatuses(ctx, changes.Recalled, stop.InTransit, stop.Pending); err != nil {
			return err
		}
	}
	return nil
}
