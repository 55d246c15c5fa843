// Package ports defines the persistence contracts of the route-sequencing domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
// Routes are always returned with their stops ordered by position.
type RouteRepository interface {
	// Add persists a new route and attaches the generated id to it.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists the route's own fields: driver, date and status.
	// Stop changes go through StopRepository.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route without locking it.
	// Returns errs.ErrObjectNotFound when no route has that id.
	Get(ctx context.Context, id int64) (*route.Route, error)

	// GetForUpdate retrieves a route and locks its row until the transaction ends.
	// Every operation that changes a route or the placement of its stops starts here,
	// so concurrent operations on the same route run one after another.
	GetForUpdate(ctx context.Context, id int64) (*route.Route, error)

	// Delete removes the route row. Stops must be detached first.
	Delete(ctx context.Context, id int64) error
}
