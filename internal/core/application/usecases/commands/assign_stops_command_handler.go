package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/pkg/errs"
)

// AssignStopsCommandHandler places stops on a route, keeping positions contiguous.
//
// The route row is locked first, then the requested stop rows, so two requests for the
// same route or the same stop run one after the other. A stop that already belongs to
// another route is rejected; it must be detached from that route first.
type AssignStopsCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignStopsCommandHandler(uowFactory UoWFactory) AssignStopsCommandHandler {
	return AssignStopsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the stops after the route's highest position, resets them to PENDING
// and renumbers the route 1..N. It returns the route with its stops.
func (h AssignStopsCommandHandler) Handle(ctx context.Context, cmd AssignStopsCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	stopRepo := uow.StopRepository()

	r, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	stops, err := stopRepo.GetForUpdate(ctx, cmd.StopIDs())
	if err != nil {
		return nil, err
	}

	added, err := r.Assign(stops)
	if errors.Is(err, stop.ErrStopAlreadyAssigned) {
		return nil, errs.NewValueIsInvalidErrorWithCause("stop_ids", err)
	}
	if err != nil {
		return nil, err
	}

	for _, s := range added {
		if err = stopRepo.Update(ctx, s); err != nil {
			return nil, err
		}
	}

	if err = stopRepo.UpdatePositions(ctx, r.ID(), r.StopIDs()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
