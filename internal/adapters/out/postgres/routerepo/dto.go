// Package routerepo persists routes. Stops are loaded with the route but written
// through stoprepo.
package routerepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/stoprepo"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
)

// RouteDTO is the routes table.
type RouteDTO struct {
	ID            int64              `gorm:"primaryKey"`
	ScheduledDate time.Time          `gorm:"type:date;not null;index"`
	DriverName    string             `gorm:"type:varchar(255);not null"`
	Status        string             `gorm:"type:varchar(20);not null"`
	Stops         []stoprepo.StopDTO `gorm:"foreignKey:RouteID"`
	CreatedAt     time.Time
}

func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(r *route.Route) RouteDTO {
	return RouteDTO{
		ID:            r.ID(),
		ScheduledDate: r.ScheduledDate(),
		DriverName:    r.DriverName(),
		Status:        r.Status().String(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	status, err := route.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	stops := make([]*stop.Stop, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		s, stopErr := stoprepo.ToDomain(stopDTO)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, s)
	}

	y, m, d := dto.ScheduledDate.Date()
	scheduledDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return route.RestoreRoute(dto.ID, scheduledDate, dto.DriverName, status, stops)
}
