package ports

import (
	"context"

	"logistics/internal/core/domain/model/stop"
)

// StopRepository defines the persistence contract for delivery stops.
type StopRepository interface {
	// Add persists a new stop and attaches the generated id to it.
	Add(ctx context.Context, s *stop.Stop) error

	// Update persists the stop's placement and status: route, position, status.
	Update(ctx context.Context, s *stop.Stop) error

	// Get retrieves a stop with its zone name.
	// Returns errs.ErrObjectNotFound when no stop has that id.
	Get(ctx context.Context, id int64) (*stop.Stop, error)

	// GetForUpdate retrieves and locks the given stops, returned in the order of ids.
	// Returns errs.ErrObjectNotFound naming the first id that does not exist.
	GetForUpdate(ctx context.Context, ids []int64) ([]*stop.Stop, error)

	// GetUnassigned lists stops that belong to no route, oldest first.
	GetUnassigned(ctx context.Context) ([]*stop.Stop, error)

	// UpdatePositions writes positions 1..N for orderedIDs, all of which must belong to routeID.
	// Either every row is updated or an error is returned; the caller's transaction is
	// expected to roll back on error.
	UpdatePositions(ctx context.Context, routeID int64, orderedIDs []int64) error

	// UpdateStatuses moves the listed stops from one status to another. Stops whose
	// current status is not from are left untouched.
	UpdateStatuses(ctx context.Context, ids []int64, from, to stop.Status) error

	// DetachFromRoute unassigns every stop of routeID: no route, position 0, PENDING.
	DetachFromRoute(ctx context.Context, routeID int64) error
}
