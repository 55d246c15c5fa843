package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/route"
)

// UpdateRouteCommandHandler edits a route's driver and date. Status and stops are not touched.
type UpdateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewUpdateRouteCommandHandler(uowFactory RouteUoWFactory) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the route, applies the changes and returns the updated route.
func (h UpdateRouteCommandHandler) Handle(ctx context.Context, cmd UpdateRouteCommand) (*route.Route, error) {
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
	r, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	var changeErrs []error
	if name := cmd.DriverName(); name != nil {
		changeErrs = append(changeErrs, r.ChangeDriver(*name))
	}
	if date := cmd.ScheduledDate(); date != nil {
		changeErrs = append(changeErrs, r.ChangeDate(*date))
	}
	if err = errors.Join(changeErrs...); err != nil {
		return nil, err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
