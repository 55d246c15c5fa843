package commands

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/domain/services"
)

// OptimizeRouteCommandHandler re-sequences a route and stores the new order.
//
// The route is locked, its stops are sequenced, and the new positions and any stop
// status corrections are written in one transaction. Any failure rolls everything
// back, so positions are never left half-renumbered. Re-running the command on an
// unchanged route yields the same order.
//
// Example:
//
//	handler := NewOptimizeRouteCommandHandler(uowFactory, sequencer, logger)
//	cmd, _ := NewOptimizeRouteCommand(routeID, nil, nil)
//	seq, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoStopsAssigned):
//	    // nothing to optimize
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown route
//	}
type OptimizeRouteCommandHandler struct {
	uowFactory UoWFactory
	sequencer  services.RouteSequencer
	logger     *slog.Logger
}

func NewOptimizeRouteCommandHandler(
	uowFactory UoWFactory,
	sequencer services.RouteSequencer,
	logger *slog.Logger,
) OptimizeRouteCommandHandler {
	return OptimizeRouteCommandHandler{
		uowFactory: uowFactory,
		sequencer:  sequencer,
		logger:     logger.With("component", "optimize_route_handler"),
	}
}

// Handle returns the committed sequence. Stops in the result reflect their stored
// position and status.
func (h OptimizeRouteCommandHandler) Handle(ctx context.Context, cmd OptimizeRouteCommand) (services.Sequence, error) {
	if err := cmd.Validate(); err != nil {
		return services.Sequence{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Sequence{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RouteRepository().GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return services.Sequence{}, err
	}

	seq, err := h.sequencer.Sequence(r.Stops(), cmd.Origin())
	if errors.Is(err, services.ErrEmptyRoute) || errors.Is(err, services.ErrNoAssignableStops) {
		return services.Sequence{}, ErrNoStopsAssigned
	}
	if err != nil {
		return services.Sequence{}, err
	}

	if err = r.Reorder(seq.StopIDs()); err != nil {
		return services.Sequence{}, err
	}
	changes := r.AlignStopStatuses()

	stopRepo := uow.StopRepository()
	if err = stopRepo.UpdatePositions(ctx, r.ID(), r.StopIDs()); err != nil {
		return services.Sequence{}, err
	}
	if err = persistStatusChanges(ctx, stopRepo, changes); err != nil {
		return services.Sequence{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Sequence{}, err
	}

	h.logger.InfoContext(ctx, "Route optimized",
		"route_id", r.ID(),
		"algorithm", seq.Metadata.Algorithm,
		"total_stops", seq.Metadata.TotalStops,
		"geolocated_stops", seq.Metadata.GeolocatedStops,
		"unlocated_stops", seq.Metadata.UnlocatedStops,
		"total_distance_km", seq.Metadata.TotalDistanceKm,
		"dispatched", len(changes.Dispatched),
		"recalled", len(changes.Recalled),
	)

	return seq, nil
}
