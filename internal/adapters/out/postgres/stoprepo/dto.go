// Package stoprepo persists delivery stops and the zones they reference.
package stoprepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stop"
)

// ZoneDTO is a delivery zone. Stops only need its name; the multiplier belongs to pricing.
type ZoneDTO struct {
	ID              int64   `gorm:"primaryKey"`
	Name            string  `gorm:"type:varchar(100);not null;uniqueIndex"`
	PriceMultiplier float64 `gorm:"type:numeric(6,2);not null"`
}

func (ZoneDTO) TableName() string {
	return "zones"
}

// StopDTO is the stops table. Unset coordinates are stored as (0, 0).
type StopDTO struct {
	ID        int64    `gorm:"primaryKey"`
	Address   string   `gorm:"type:varchar(255);not null"`
	ZoneID    *int64   `gorm:"index"`
	Zone      *ZoneDTO `gorm:"foreignKey:ZoneID;constraint:OnDelete:SET NULL"`
	Lat       float64  `gorm:"type:double precision;not null"`
	Lng       float64  `gorm:"type:double precision;not null"`
	RouteID   *int64   `gorm:"index"`
	Position  int      `gorm:"type:int;not null"`
	Status    string   `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
}

func (StopDTO) TableName() string {
	return "stops"
}

func fromDomain(s *stop.Stop) StopDTO {
	return StopDTO{
		ID:       s.ID(),
		Address:  s.Address(),
		ZoneID:   s.ZoneID(),
		Lat:      s.Coordinate().Lat(),
		Lng:      s.Coordinate().Lng(),
		RouteID:  s.RouteID(),
		Position: s.Position(),
		Status:   s.Status().String(),
	}
}

// ToDomain rebuilds a stop. The Zone association must be preloaded for the zone name
// to be filled in.
func ToDomain(dto StopDTO) (*stop.Stop, error) {
	status, err := stop.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var zoneName *string
	if dto.Zone != nil {
		name := dto.Zone.Name
		zoneName = &name
	}

	return stop.RestoreStop(
		dto.ID,
		dto.Address,
		dto.ZoneID,
		zoneName,
		kernel.NewCoordinate(dto.Lat, dto.Lng),
		dto.RouteID,
		dto.Position,
		status,
	)
}

// placement holds the columns a stop's route membership is made of.
func placement(s *stop.Stop) map[string]any {
	return map[string]any{
		"route_id": s.RouteID(),
		"position": s.Position(),
		"status":   s.Status().String(),
	}
}
