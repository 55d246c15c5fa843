package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stop"

	"github.com/stretchr/testify/require"
)

var routeID = int64(1)

func geoStop(t *testing.T, id int64, lat, lng float64) *stop.Stop {
	t.Helper()
	s, err := stop.RestoreStop(id, "Calle "+string(rune('A'+id%26)), nil, nil,
		kernel.NewCoordinate(lat, lng), &routeID, int(id), stop.Pending)
	require.NoError(t, err)
	return s
}

func plainStop(t *testing.T, id int64, zone, address string) *stop.Stop {
	t.Helper()
	var zoneName *string
	if zone != "" {
		zoneName = &zone
	}
	s, err := stop.RestoreStop(id, address, nil, zoneName, kernel.Unset, &routeID, int(id), stop.Pending)
	require.NoError(t, err)
	return s
}

func ids(stops []*stop.Stop) []int64 {
	out := make([]int64, len(stops))
	for i, s := range stops {
		out[i] = s.ID()
	}
	return out
}
