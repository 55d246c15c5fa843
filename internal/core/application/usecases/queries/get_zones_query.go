package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetZonesQueryIsNotConstructed = errors.New(
	"GetZonesQuery must be created via NewGetZonesQuery constructor",
)

// GetZonesQuery lists delivery zones by name.
type GetZonesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetZonesQuery() GetZonesQuery {
	return GetZonesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetZonesQueryIsNotConstructed)
}
