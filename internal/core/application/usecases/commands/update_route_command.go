package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateRouteCommandIsNotConstructed = errors.New(
	"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
)

// UpdateRouteCommand changes the driver and/or the scheduled date of a route.
// Nil fields are left as they are, but at least one must be set.
type UpdateRouteCommand struct {
	routeID       int64
	driverName    *string
	scheduledDate *time.Time

	guard guard.ConstructorGuard
}

func NewUpdateRouteCommand(routeID int64, driverName *string, scheduledDate *time.Time) (UpdateRouteCommand, error) {
	cmd := UpdateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if driverName == nil && scheduledDate == nil {
		return UpdateRouteCommand{}, errs.NewValueIsRequiredErrorWithCause(
			"driver_name", errors.New("driver_name or scheduled_date must be provided"))
	}

	if err := errors.Join(
		validateID("route_id", routeID, ErrRouteIDIsInvalid),
		cmd.setDriverName(driverName),
		cmd.setScheduledDate(scheduledDate),
	); err != nil {
		return UpdateRouteCommand{}, err
	}
	cmd.routeID = routeID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

func (c UpdateRouteCommand) RouteID() int64 {
	return c.routeID
}

// DriverName returns the new driver name, or nil to keep the current one.
func (c UpdateRouteCommand) DriverName() *string {
	return c.driverName
}

// ScheduledDate returns the new date, or nil to keep the current one.
func (c UpdateRouteCommand) ScheduledDate() *time.Time {
	return c.scheduledDate
}

func (c *UpdateRouteCommand) setDriverName(driverName *string) error {
	if driverName == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*driverName)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("driver_name")
	}
	c.driverName = &trimmed
	return nil
}

func (c *UpdateRouteCommand) setScheduledDate(scheduledDate *time.Time) error {
	if scheduledDate == nil {
		return nil
	}
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduled_date")
	}
	c.scheduledDate = scheduledDate
	return nil
}
