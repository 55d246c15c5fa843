package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"

	"github.com/stretchr/testify/require"
)

const testRouteID = int64(7)

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func routeStop(t *testing.T, id int64, position int, status stop.Status, coordinate kernel.Coordinate) *stop.Stop {
	t.Helper()
	routeID := testRouteID
	s, err := stop.RestoreStop(id, "Calle 1", nil, nil, coordinate, &routeID, position, status)
	require.NoError(t, err)
	return s
}

func looseStop(t *testing.T, id int64) *stop.Stop {
	t.Helper()
	s, err := stop.RestoreStop(id, "Calle 2", nil, nil, kernel.Unset, nil, 0, stop.Pending)
	require.NoError(t, err)
	return s
}

func testRoute(t *testing.T, status route.Status, stops ...*stop.Stop) *route.Route {
	t.Helper()
	r, err := route.RestoreRoute(testRouteID, testDate, "Lucía Paz", status, stops)
	require.NoError(t, err)
	return r
}

func routeStopAt(t *testing.T, id int64, position int, address string) *stop.Stop {
	t.Helper()
	routeID := testRouteID
	s, err := stop.RestoreStop(id, address, nil, nil, kernel.Unset, &routeID, position, stop.Pending)
	require.NoError(t, err)
	return s
}
