package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrAdvanceStopStatusCommandIsNotConstructed = errors.New(
	"AdvanceStopStatusCommand must be created via NewAdvanceStopStatusCommand constructor",
)

// AdvanceStopStatusCommand records the driver's confirmation step for one stop.
type AdvanceStopStatusCommand struct {
	stopID int64

	guard guard.ConstructorGuard
}

func NewAdvanceStopStatusCommand(stopID int64) (AdvanceStopStatusCommand, error) {
	if err := validateID("stop_id", stopID, ErrStopIDIsInvalid); err != nil {
		return AdvanceStopStatusCommand{}, err
	}

	return AdvanceStopStatusCommand{
		stopID: stopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStopStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStopStatusCommandIsNotConstructed)
}

func (c AdvanceStopStatusCommand) StopID() int64 {
	return c.stopID
}
