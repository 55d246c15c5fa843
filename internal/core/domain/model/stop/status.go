package stop

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status represents the delivery state of a stop.
//
// State transitions:
//
//	Pending ──Dispatch──> InTransit ──Recall──> Pending
//
//	Advance (manual confirmation during an active run):
//	Pending/InTransit ──> Delivered ──> Cancelled ──> Pending
//
// Dispatch and Recall are driven by the owning route's lifecycle; Advance is the
// driver-facing three-state cycle.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: waiting for assignment or for the route to start.
	Pending

	// InTransit means the stop is on a route that is currently being driven.
	InTransit

	// Delivered is a terminal delivery outcome.
	Delivered

	// Cancelled is a terminal delivery outcome.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// ParseStatus converts the wire name of a status ("PENDING", "in_transit", ...) back to a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a stop status", s))
}

// Validate checks if the Status value is one of the four defined statuses.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status; unknown values print "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the stop reached a delivery outcome.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Dispatch moves a pending stop onto the road. Other statuses are returned unchanged:
// starting a route never touches delivered, cancelled or already moving stops.
func (s Status) Dispatch() Status {
	if s == Pending {
		return InTransit
	}
	return s
}

// Recall takes an in-transit stop back to pending; other statuses are unchanged.
func (s Status) Recall() Status {
	if s == InTransit {
		return Pending
	}
	return s
}

// Advance steps the manual confirmation cycle:
//
//	Pending, InTransit -> Delivered
//	Delivered          -> Cancelled
//	Cancelled          -> Pending
func (s Status) Advance() (Status, error) {
	switch s {
	case Pending, InTransit:
		return Delivered, nil
	case Delivered:
		return Cancelled, nil
	case Cancelled:
		return Pending, nil
	case Unknown:
	}
	return Unknown, errs.NewInvalidTransitionError("stop", s.String(), "advance")
}
