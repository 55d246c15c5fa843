package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
)

// AdvanceStopStatusCommandHandler steps a stop through PENDING -> DELIVERED ->
// CANCELLED -> PENDING. An IN_TRANSIT stop advances as if it were PENDING.
//
// Confirmation is only accepted while the stop's route is IN_PROGRESS; the route row is
// locked so the step cannot interleave with a start, reschedule or optimize.
type AdvanceStopStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewAdvanceStopStatusCommandHandler(uowFactory UoWFactory) AdvanceStopStatusCommandHandler {
	return AdvanceStopStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stop with its new status. It fails with route.ErrRouteIsNotInProgress
// when the stop is unassigned or its route is not being driven.
func (h AdvanceStopStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStopStatusCommand) (*stop.Stop, error) {
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

	stopRepo := uow.StopRepository()
	current, err := stopRepo.Get(ctx, cmd.StopID())
	if err != nil {
		return nil, err
	}
	if current.RouteID() == nil {
		return nil, fmt.Errorf("%w: stop %d is not on a route", route.ErrRouteIsNotInProgress, current.ID())
	}

	r, err := uow.RouteRepository().GetForUpdate(ctx, *current.RouteID())
	if err != nil {
		return nil, err
	}

	advanced, err := r.AdvanceStop(cmd.StopID())
	if err != nil {
		return nil, err
	}

	if err = stopRepo.Update(ctx, advanced); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return advanced, nil
}
