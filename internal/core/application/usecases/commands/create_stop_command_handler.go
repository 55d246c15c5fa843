package commands

import (
	"context"

	"logistics/internal/core/domain/model/stop"
)

// CreateStopCommandHandler stores new unassigned stops.
type CreateStopCommandHandler struct {
	uowFactory StopUoWFactory
}

func NewCreateStopCommandHandler(uowFactory StopUoWFactory) CreateStopCommandHandler {
	return CreateStopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the stop as PENDING with no route and returns it with its id.
func (h CreateStopCommandHandler) Handle(ctx context.Context, cmd CreateStopCommand) (*stop.Stop, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := stop.NewStop(cmd.Address(), cmd.ZoneID(), cmd.Coordinate())
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

	if err = uow.StopRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
