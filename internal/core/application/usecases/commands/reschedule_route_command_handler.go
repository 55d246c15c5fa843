package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// RescheduleRouteCommandHandler moves an IN_PROGRESS route back to SCHEDULED and its
// IN_TRANSIT stops back to PENDING, atomically.
type RescheduleRouteCommandHandler struct {
	uowFactory UoWFactory
}

func NewRescheduleRouteCommandHandler(uowFactory UoWFactory) RescheduleRouteCommandHandler {
	return RescheduleRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrInvalidTransition when the route is not IN_PROGRESS.
func (h RescheduleRouteCommandHandler) Handle(ctx context.Context, cmd RescheduleRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionRoute(ctx, h.uowFactory, cmd.RouteID(), (*route.Route).Reschedule)
}
