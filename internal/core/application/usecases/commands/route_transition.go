package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// transitionRoute locks a route, applies a status transition and persists the route
// together with the stop statuses the transition changed.
func transitionRoute(
	ctx context.Context,
	uowFactory UoWFactory,
	routeID int64,
	transition func(*route.Route) (route.StopStatusChanges, error),
) (*route.Route, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	r, err := routeRepo.GetForUpdate(ctx, routeID)
	if err != nil {
		return nil, err
	}

	changes, err := transition(r)
	if err != nil {
		return nil, err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = persistStatusChanges(ctx, uow.StopRepository(), changes); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
