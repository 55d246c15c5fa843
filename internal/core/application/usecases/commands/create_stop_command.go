package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateStopCommandIsNotConstructed = errors.New(
	"CreateStopCommand must be created via NewCreateStopCommand constructor",
)

// CreateStopCommand registers a shipment destination. Coordinates are optional: a stop
// without them is stored with the (0, 0) sentinel and later ordered by zone and address.
//
// Example:
//
//	lat, lng := -26.8301, -65.2044
//	cmd, err := NewCreateStopCommand("Av. Sarmiento 450", &zoneID, &lat, &lng)
//	s, err := handler.Handle(ctx, cmd)
type CreateStopCommand struct {
	address    string
	zoneID     *int64
	coordinate kernel.Coordinate

	guard guard.ConstructorGuard
}

func NewCreateStopCommand(address string, zoneID *int64, lat, lng *float64) (CreateStopCommand, error) {
	cmd := CreateStopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddress(address),
		cmd.setZoneID(zoneID),
		cmd.setCoordinate(lat, lng),
	); err != nil {
		return CreateStopCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStopCommand) Validate() error {
	return c.guard.Validate(ErrCreateStopCommandIsNotConstructed)
}

func (c CreateStopCommand) Address() string {
	return c.address
}

func (c CreateStopCommand) ZoneID() *int64 {
	return c.zoneID
}

// Coordinate returns the stop location, kernel.Unset when none was given.
func (c CreateStopCommand) Coordinate() kernel.Coordinate {
	return c.coordinate
}

func (c *CreateStopCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *CreateStopCommand) setZoneID(zoneID *int64) error {
	if zoneID != nil && *zoneID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("zone_id", fmt.Errorf("%d is not a positive id", *zoneID))
	}
	c.zoneID = zoneID
	return nil
}

func (c *CreateStopCommand) setCoordinate(lat, lng *float64) error {
	coordinate, err := parseCoordinate("lat", "lng", lat, lng)
	if err != nil {
		return err
	}
	c.coordinate = coordinate
	return nil
}
