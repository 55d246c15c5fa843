package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// StartRouteCommandHandler moves a SCHEDULED route to IN_PROGRESS and its PENDING
// stops to IN_TRANSIT, atomically.
type StartRouteCommandHandler struct {
	uowFactory UoWFactory
}

func NewStartRouteCommandHandler(uowFactory UoWFactory) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrInvalidTransition when the route is not SCHEDULED.
func (h StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionRoute(ctx, h.uowFactory, cmd.RouteID(), (*route.Route).Start)
}
