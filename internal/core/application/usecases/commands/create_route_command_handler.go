package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// CreateRouteCommandHandler creates scheduled routes without stops.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new SCHEDULED route and returns it with its generated id.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := route.NewRoute(cmd.ScheduledDate(), cmd.DriverName())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
