// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// StopRepoFactory provides access to the stop repository within a transaction.
	StopRepoFactory interface {
		StopRepository() ports.StopRepository
	}

	// RouteUoW manages transactions for operations on the route row alone.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// StopUoW manages transactions for operations on stops alone.
	StopUoW interface {
		TxManager
		StopRepoFactory
	}

	// StopUoWFactory creates new stop unit of work instances.
	StopUoWFactory interface {
		Create() StopUoW
	}

	// UoW manages transactions that touch a route together with its stops.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   r, err := uow.RouteRepository().GetForUpdate(ctx, routeID)
	//   // ... change the route, then persist stops
	//   err = uow.StopRepository().UpdatePositions(ctx, r.ID(), r.StopIDs())
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RouteRepoFactory
		StopRepoFactory
	}

	// UoWFactory creates new unit of work instances for route and stop operations.
	UoWFactory interface {
		Create() UoW
	}
)
