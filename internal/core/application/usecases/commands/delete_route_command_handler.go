package commands

import (
	"context"
)

// DeleteRouteCommandHandler detaches every stop of a route and deletes it in one
// transaction. Detached stops become unassigned PENDING stops with position 0.
type DeleteRouteCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteRouteCommandHandler(uowFactory UoWFactory) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	r, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = uow.StopRepository().DetachFromRoute(ctx, r.ID()); err != nil {
		return err
	}
	r.Detach()

	if err = routeRepo.Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
