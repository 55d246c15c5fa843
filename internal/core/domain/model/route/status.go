package route

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a driver's route.
//
// State transitions:
//
//	Scheduled ──Start──> InProgress ──Finish──> Finished
//	    ^                    │
//	    └─────Reschedule─────┘
//
// Finish is accepted from any valid status; finishing a finished route is a no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Scheduled is the initial status of a route: planned, not yet driven.
	Scheduled

	// InProgress means the driver is out delivering.
	InProgress

	// Finished is the final state of a route.
	Finished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Scheduled:  "SCHEDULED",
		InProgress: "IN_PROGRESS",
		Finished:   "FINISHED",
	}
}

// ParseStatus converts a wire name such as "IN_PROGRESS" back to a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a route status", s))
}

// Validate checks if the Status value is one of the three defined statuses.
func (s Status) Validate() error {
	if s < Scheduled || s > Finished {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Start transitions Scheduled -> InProgress.
func (s Status) Start() (Status, error) {
	if s != Scheduled {
		return s, errs.NewInvalidTransitionError("route", s.String(), "start")
	}
	return InProgress, nil
}

// Finish transitions any valid status to Finished.
func (s Status) Finish() (Status, error) {
	if err := s.Validate(); err != nil {
		return s, errs.NewInvalidTransitionError("route", s.String(), "finish")
	}
	return Finished, nil
}

// Reschedule transitions InProgress -> Scheduled.
func (s Status) Reschedule() (Status, error) {
	if s != InProgress {
		return s, errs.NewInvalidTransitionError("route", s.String(), "reschedule")
	}
	return Scheduled, nil
}
