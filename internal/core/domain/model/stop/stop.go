package stop

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop or RestoreStop constructor")
	ErrStopAlreadyAssigned  = errors.New("stop is already assigned to another route")
	ErrStopIDAlreadySet     = errors.New("stop id is already set")
)

// Stop is a shipment awaiting or undergoing delivery.
//
// A stop belongs to at most one route at a time. While unassigned it carries a nil
// route and position 0; inside a route its position is 1-based and unique. The
// sequencing engine only reads the coordinate, zone name and address, and writes
// route, position and status.
//
// Example:
//
//	s, err := stop.NewStop("Av. Mate de Luna 1200", &zoneID, kernel.NewCoordinate(-26.83, -65.22))
//	if err != nil {
//	    return err
//	}
//	if err := s.AssignTo(routeID, 3); err != nil {
//	    return err
//	}
type Stop struct {
	id int64

	address string

	zoneID   *int64
	zoneName *string

	coordinate kernel.Coordinate

	routeID  *int64
	position int

	status Status

	isConstructed bool
}

// NewStop creates an unassigned, pending stop that has not been stored yet (ID 0).
// A missing coordinate should be passed as kernel.Unset.
func NewStop(address string, zoneID *int64, coordinate kernel.Coordinate) (*Stop, error) {
	s := &Stop{
		coordinate:    coordinate,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setAddress(address),
		s.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStop rebuilds a stop from storage.
func RestoreStop(
	id int64,
	address string,
	zoneID *int64,
	zoneName *string,
	coordinate kernel.Coordinate,
	routeID *int64,
	position int,
	status Status,
) (*Stop, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if routeID == nil && position != 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"position", fmt.Errorf("unassigned stop %d has position %d", id, position))
	}

	return &Stop{
		id:            id,
		address:       address,
		zoneID:        zoneID,
		zoneName:      zoneName,
		coordinate:    coordinate,
		routeID:       routeID,
		position:      position,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the stop was created through one of its constructors.
func (s *Stop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

// AttachID sets the storage identifier of a freshly created stop. It may be called once.
func (s *Stop) AttachID(id int64) error {
	if s.id != 0 {
		return ErrStopIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	s.id = id
	return nil
}

func (s *Stop) ID() int64 {
	return s.id
}

func (s *Stop) Address() string {
	return s.address
}

func (s *Stop) ZoneID() *int64 {
	return s.zoneID
}

// ZoneName returns the joined zone name, or "" when the stop has no zone.
func (s *Stop) ZoneName() string {
	if s.zoneName == nil {
		return ""
	}
	return *s.zoneName
}

func (s *Stop) Coordinate() kernel.Coordinate {
	return s.coordinate
}

// IsGeolocated reports whether the stop can take part in geographic sequencing.
func (s *Stop) IsGeolocated() bool {
	return s.coordinate.IsUsable()
}

func (s *Stop) RouteID() *int64 {
	return s.routeID
}

func (s *Stop) Position() int {
	return s.position
}

func (s *Stop) Status() Status {
	return s.status
}

// IsOnRoute reports whether the stop currently belongs to routeID.
func (s *Stop) IsOnRoute(routeID int64) bool {
	return s.routeID != nil && *s.routeID == routeID
}

// AssignTo appends the stop to routeID at position and resets it to Pending.
// A stop already on a different route is rejected; it must be detached first.
func (s *Stop) AssignTo(routeID int64, position int) error {
	if routeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("route_id", fmt.Errorf("%d is not a positive id", routeID))
	}
	if s.routeID != nil && *s.routeID != routeID {
		return fmt.Errorf("%w: stop %d is on route %d", ErrStopAlreadyAssigned, s.id, *s.routeID)
	}
	if err := s.Reposition(position); err != nil {
		return err
	}

	s.routeID = &routeID
	s.status = Pending
	return nil
}

// Reposition sets a new 1-based position inside the current route.
func (s *Stop) Reposition(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("position", fmt.Errorf("%d is not a 1-based position", position))
	}
	s.position = position
	return nil
}

// Detach removes the stop from its route: no route, position 0, Pending.
func (s *Stop) Detach() {
	s.routeID = nil
	s.position = 0
	s.status = Pending
}

// Dispatch marks a pending stop as in transit.
func (s *Stop) Dispatch() {
	s.status = s.status.Dispatch()
}

// Recall marks an in-transit stop as pending again.
func (s *Stop) Recall() {
	s.status = s.status.Recall()
}

// AdvanceStatus steps the manual delivery confirmation cycle.
func (s *Stop) AdvanceStatus() error {
	next, err := s.status.Advance()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

func (s *Stop) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}

func (s *Stop) setZoneID(zoneID *int64) error {
	if zoneID != nil && *zoneID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("zone_id", fmt.Errorf("%d is not a positive id", *zoneID))
	}
	s.zoneID = zoneID
	return nil
}
