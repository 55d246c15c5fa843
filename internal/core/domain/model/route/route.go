package route

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"logistics/internal/core/domain/model/stop"
	"logistics/internal/pkg/errs"
)

// DateLayout is the wire format of a route's scheduled date.
const DateLayout = "2006-01-02"

var (
	// ErrRouteIsNotConstructed is returned when a Route was not created through NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructor")

	// ErrRouteIsNotInProgress is returned when delivery confirmation is attempted on a route
	// that is not being driven.
	ErrRouteIsNotInProgress = errors.New("route is not in progress")

	// ErrRouteIsFinished is returned when stops are added to a finished route.
	ErrRouteIsFinished = errors.New("route is finished")

	// ErrSequenceMismatch is returned when a new visiting order is not a permutation of the route's stops.
	ErrSequenceMismatch = errors.New("sequence does not match the route's stops")

	ErrRouteIDAlreadySet = errors.New("route id is already set")
)

// StopStatusChanges lists the stops whose status moved as a side effect of a route operation.
type StopStatusChanges struct {
	// Dispatched stops went PENDING -> IN_TRANSIT.
	Dispatched []int64

	// Recalled stops went IN_TRANSIT -> PENDING.
	Recalled []int64
}

// IsEmpty reports whether no stop changed status.
func (c StopStatusChanges) IsEmpty() bool {
	return len(c.Dispatched) == 0 && len(c.Recalled) == 0
}

// Route is a driver's delivery run for one day. It is the aggregate root for the stops
// placed on it: positions and statuses of those stops only change through Route methods.
//
// Route follows these invariants:
//   - Stops are kept ordered by position
//   - After Assign or Reorder, positions are exactly 1..N
//   - A stop is IN_TRANSIT only while the route is InProgress
//
// Example:
//
//	r, err := route.NewRoute(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Lucía Paz")
//	if err != nil {
//	    return err
//	}
//	changes, err := r.Start()
type Route struct {
	id            int64
	scheduledDate time.Time
	driverName    string
	status        Status

	stops []*stop.Stop

	isConstructed bool
}

// NewRoute creates a scheduled route without stops. The date is truncated to a calendar day.
func NewRoute(scheduledDate time.Time, driverName string) (*Route, error) {
	r := &Route{
		status:        Scheduled,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setScheduledDate(scheduledDate),
		r.setDriverName(driverName),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute rebuilds a route and its stops from storage. Stops are sorted by position.
func RestoreRoute(id int64, scheduledDate time.Time, driverName string, status Status, stops []*stop.Stop) (*Route, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	ordered := slices.Clone(stops)
	for _, s := range ordered {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if !s.IsOnRoute(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"stops", fmt.Errorf("stop %d does not belong to route %d", s.ID(), id))
		}
	}
	slices.SortStableFunc(ordered, func(a, b *stop.Stop) int {
		if a.Position() != b.Position() {
			return a.Position() - b.Position()
		}
		return cmp.Compare(a.ID(), b.ID())
	})

	return &Route{
		id:            id,
		scheduledDate: scheduledDate,
		driverName:    driverName,
		status:        status,
		stops:         ordered,
		isConstructed: true,
	}, nil
}

// Validate ensures the route was created through one of its constructors.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// AttachID sets the storage identifier of a freshly created route. It may be called once.
func (r *Route) AttachID(id int64) error {
	if r.id != 0 {
		return ErrRouteIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	r.id = id
	return nil
}

func (r *Route) ID() int64 {
	return r.id
}

func (r *Route) ScheduledDate() time.Time {
	return r.scheduledDate
}

func (r *Route) DriverName() string {
	return r.driverName
}

func (r *Route) Status() Status {
	return r.status
}

// Stops returns the route's stops ordered by position. The slice is a copy.
func (r *Route) Stops() []*stop.Stop {
	return slices.Clone(r.stops)
}

// StopIDs returns stop identifiers in visiting order.
func (r *Route) StopIDs() []int64 {
	ids := make([]int64, 0, len(r.stops))
	for _, s := range r.stops {
		ids = append(ids, s.ID())
	}
	return ids
}

func (r *Route) HasStops() bool {
	return len(r.stops) > 0
}

// NextPosition is one past the highest position currently on the route.
func (r *Route) NextPosition() int {
	highest := 0
	for _, s := range r.stops {
		highest = max(highest, s.Position())
	}
	return highest + 1
}

// ChangeDriver renames the route's driver.
func (r *Route) ChangeDriver(driverName string) error {
	return r.setDriverName(driverName)
}

// ChangeDate moves the route to another calendar day.
func (r *Route) ChangeDate(scheduledDate time.Time) error {
	return r.setScheduledDate(scheduledDate)
}

// Assign appends stops to the end of the route in the given order, each at the next free
// position and reset to PENDING. Stops already on this route keep their place.
// Positions are renumbered 1..N afterwards. It returns the stops that were added.
func (r *Route) Assign(stops []*stop.Stop) ([]*stop.Stop, error) {
	if r.status == Finished {
		return nil, fmt.Errorf("%w: route %d cannot take new stops", ErrRouteIsFinished, r.id)
	}

	added := make([]*stop.Stop, 0, len(stops))
	next := r.NextPosition()
	for _, s := range stops {
		if s.IsOnRoute(r.id) {
			continue
		}
		if err := s.AssignTo(r.id, next); err != nil {
			return nil, err
		}
		r.stops = append(r.stops, s)
		added = append(added, s)
		next++
	}

	r.compactPositions()
	return added, nil
}

// Reorder replaces the visiting order. orderedIDs must be a permutation of the route's
// stop ids; positions become 1..N in that order.
func (r *Route) Reorder(orderedIDs []int64) error {
	if len(orderedIDs) != len(r.stops) {
		return fmt.Errorf("%w: got %d ids for %d stops", ErrSequenceMismatch, len(orderedIDs), len(r.stops))
	}

	byID := make(map[int64]*stop.Stop, len(r.stops))
	for _, s := range r.stops {
		byID[s.ID()] = s
	}

	reordered := make([]*stop.Stop, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		s, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: stop %d is missing or repeated", ErrSequenceMismatch, id)
		}
		delete(byID, id)
		reordered = append(reordered, s)
	}

	for i, s := range reordered {
		if err := s.Reposition(i + 1); err != nil {
			return err
		}
	}
	r.stops = reordered
	return nil
}

// AlignStopStatuses enforces status coupling: while InProgress every PENDING stop is
// dispatched, otherwise every IN_TRANSIT stop is recalled. Terminal stops never change.
func (r *Route) AlignStopStatuses() StopStatusChanges {
	var changes StopStatusChanges
	for _, s := range r.stops {
		before := s.Status()
		if r.status == InProgress {
			s.Dispatch()
		} else {
			s.Recall()
		}
		switch {
		case before == stop.Pending && s.Status() == stop.InTransit:
			changes.Dispatched = append(changes.Dispatched, s.ID())
		case before == stop.InTransit && s.Status() == stop.Pending:
			changes.Recalled = append(changes.Recalled, s.ID())
		}
	}
	return changes
}

// Start moves a scheduled route to InProgress and dispatches its pending stops.
func (r *Route) Start() (StopStatusChanges, error) {
	next, err := r.status.Start()
	if err != nil {
		return StopStatusChanges{}, err
	}
	r.status = next
	return r.AlignStopStatuses(), nil
}

// Finish closes the route. In-transit stops go back to PENDING.
func (r *Route) Finish() (StopStatusChanges, error) {
	next, err := r.status.Finish()
	if err != nil {
		return StopStatusChanges{}, err
	}
	r.status = next
	return r.AlignStopStatuses(), nil
}

// Reschedule takes an in-progress route back to Scheduled and recalls its in-transit stops.
func (r *Route) Reschedule() (StopStatusChanges, error) {
	next, err := r.status.Reschedule()
	if err != nil {
		return StopStatusChanges{}, err
	}
	r.status = next
	return r.AlignStopStatuses(), nil
}

// AdvanceStop steps the delivery confirmation cycle of one of the route's stops.
func (r *Route) AdvanceStop(stopID int64) (*stop.Stop, error) {
	if r.status != InProgress {
		return nil, fmt.Errorf("%w: route %d is %s", ErrRouteIsNotInProgress, r.id, r.status)
	}

	for _, s := range r.stops {
		if s.ID() != stopID {
			continue
		}
		if err := s.AdvanceStatus(); err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, errs.NewObjectNotFoundErrorWithCause("stop", stopID, fmt.Errorf("not on route %d", r.id))
}

// Detach removes every stop from the route, resetting them to unassigned PENDING stops.
func (r *Route) Detach() []*stop.Stop {
	detached := r.stops
	for _, s := range detached {
		s.Detach()
	}
	r.stops = nil
	return detached
}

// compactPositions renumbers stops 1..N keeping their relative order.
func (r *Route) compactPositions() {
	for i, s := range r.stops {
		// Reposition only fails for positions below 1.
		_ = s.Reposition(i + 1)
	}
}

func (r *Route) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduled_date")
	}
	y, m, d := scheduledDate.Date()
	r.scheduledDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}

func (r *Route) setDriverName(driverName string) error {
	driverName = strings.TrimSpace(driverName)
	if driverName == "" {
		return errs.NewValueIsRequiredError("driver_name")
	}
	r.driverName = driverName
	return nil
}
