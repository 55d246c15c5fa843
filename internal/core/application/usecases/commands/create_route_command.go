package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to plan a new driver route for a day.
//
// Example:
//
//	cmd, err := NewCreateRouteCommand(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Lucía Paz")
//	if err != nil {
//	    return fmt.Errorf("invalid route data: %w", err)
//	}
//	r, err := handler.Handle(ctx, cmd)
type CreateRouteCommand struct {
	scheduledDate time.Time
	driverName    string

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand validates that the date is set and the driver name is not blank.
func NewCreateRouteCommand(scheduledDate time.Time, driverName string) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setScheduledDate(scheduledDate),
		cmd.setDriverName(driverName),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

func (c CreateRouteCommand) DriverName() string {
	return c.driverName
}

func (c *CreateRouteCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduled_date")
	}
	c.scheduledDate = scheduledDate
	return nil
}

func (c *CreateRouteCommand) setDriverName(driverName string) error {
	driverName = strings.TrimSpace(driverName)
	if driverName == "" {
		return errs.NewValueIsRequiredError("driver_name")
	}
	c.driverName = driverName
	return nil
}
