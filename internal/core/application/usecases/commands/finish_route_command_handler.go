package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// FinishRouteCommandHandler closes a route from any status. Stops still IN_TRANSIT go
// back to PENDING; delivered and cancelled stops keep their outcome.
type FinishRouteCommandHandler struct {
	uowFactory UoWFactory
}

func NewFinishRouteCommandHandler(uowFactory UoWFactory) FinishRouteCommandHandler {
	return FinishRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h FinishRouteCommandHandler) Handle(ctx context.Context, cmd FinishRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionRoute(ctx, h.uowFactory, cmd.RouteID(), (*route.Route).Finish)
}
