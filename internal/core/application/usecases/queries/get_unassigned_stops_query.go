package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetUnassignedStopsQueryIsNotConstructed = errors.New(
	"GetUnassignedStopsQuery must be created via NewGetUnassignedStopsQuery constructor",
)

// GetUnassignedStopsQuery lists stops that wait for a route.
type GetUnassignedStopsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetUnassignedStopsQuery() GetUnassignedStopsQuery {
	return GetUnassignedStopsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedStopsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedStopsQueryIsNotConstructed)
}
