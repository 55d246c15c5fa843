package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/guard"
)

var ErrGetRoutesQueryIsNotConstructed = errors.New(
	"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
)

// GetRoutesQuery lists routes with their stops, newest date first.
// A nil date lists every route; otherwise only routes scheduled for that day.
//
// Example:
//
//	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
//	routes, err := handler.Handle(ctx, NewGetRoutesQuery(&day))
type GetRoutesQuery struct {
	date *time.Time

	guard guard.ConstructorGuard
}

func NewGetRoutesQuery(date *time.Time) GetRoutesQuery {
	q := GetRoutesQuery{guard: guard.NewConstructorGuard()}
	if date != nil {
		y, m, d := date.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		q.date = &day
	}
	return q
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// Date returns the day filter, or nil for all routes.
func (q GetRoutesQuery) Date() *time.Time {
	return q.date
}
