package stop_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewStop(t *testing.T) {
	coordinate := kernel.NewCoordinate(-26.83, -65.21)

	t.Run("should create an unassigned pending stop", func(t *testing.T) {
		s, err := stop.NewStop("  Av. Mate de Luna 1200 ", ptr(int64(3)), coordinate)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, int64(0), s.ID())
		assert.Equal(t, "Av. Mate de Luna 1200", s.Address())
		assert.Equal(t, int64(3), *s.ZoneID())
		assert.Empty(t, s.ZoneName())
		assert.Nil(t, s.RouteID())
		assert.Equal(t, 0, s.Position())
		assert.Equal(t, stop.Pending, s.Status())
		assert.True(t, s.IsGeolocated())
	})

	t.Run("should accept a stop without zone or coordinate", func(t *testing.T) {
		s, err := stop.NewStop("Laprida 55", nil, kernel.Unset)

		require.NoError(t, err)
		assert.Nil(t, s.ZoneID())
		assert.False(t, s.IsGeolocated())
	})

	t.Run("should join address and zone errors", func(t *testing.T) {
		s, err := stop.NewStop("   ", ptr(int64(-2)), coordinate)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "zone_id")
	})
}

func TestRestoreStop(t *testing.T) {
	t.Run("should restore an assigned stop", func(t *testing.T) {
		s, err := stop.RestoreStop(7, "San Martín 900", ptr(int64(1)), ptr("Centro"),
			kernel.NewCoordinate(-26.82, -65.20), ptr(int64(4)), 2, stop.InTransit)

		require.NoError(t, err)
		assert.Equal(t, int64(7), s.ID())
		assert.Equal(t, "Centro", s.ZoneName())
		assert.True(t, s.IsOnRoute(4))
		assert.False(t, s.IsOnRoute(5))
		assert.Equal(t, 2, s.Position())
		assert.Equal(t, stop.InTransit, s.Status())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		_, err := stop.RestoreStop(0, "x", nil, nil, kernel.Unset, nil, 0, stop.Pending)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := stop.RestoreStop(1, "x", nil, nil, kernel.Unset, nil, 0, stop.Unknown)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a position without a route", func(t *testing.T) {
		_, err := stop.RestoreStop(1, "x", nil, nil, kernel.Unset, nil, 3, stop.Pending)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unassigned stop 1 has position 3")
	})
}

func TestStop_Validate(t *testing.T) {
	var zero stop.Stop
	assert.ErrorIs(t, zero.Validate(), stop.ErrStopIsNotConstructed)

	var nilStop *stop.Stop
	assert.ErrorIs(t, nilStop.Validate(), stop.ErrStopIsNotConstructed)
}

func TestStop_AttachID(t *testing.T) {
	s, err := stop.NewStop("Córdoba 300", nil, kernel.Unset)
	require.NoError(t, err)

	assert.ErrorIs(t, s.AttachID(0), errs.ErrValueIsInvalid)
	require.NoError(t, s.AttachID(12))
	assert.Equal(t, int64(12), s.ID())
	assert.ErrorIs(t, s.AttachID(13), stop.ErrStopIDAlreadySet)
}

func TestStop_AssignTo(t *testing.T) {
	newStop := func(t *testing.T) *stop.Stop {
		s, err := stop.RestoreStop(1, "Junín 40", nil, nil, kernel.Unset, nil, 0, stop.Cancelled)
		require.NoError(t, err)
		return s
	}

	t.Run("should place stop on route and reset status", func(t *testing.T) {
		s := newStop(t)

		require.NoError(t, s.AssignTo(9, 4))

		assert.True(t, s.IsOnRoute(9))
		assert.Equal(t, 4, s.Position())
		assert.Equal(t, stop.Pending, s.Status())
	})

	t.Run("should reject a stop owned by another route", func(t *testing.T) {
		s := newStop(t)
		require.NoError(t, s.AssignTo(9, 1))

		err := s.AssignTo(10, 2)

		assert.ErrorIs(t, err, stop.ErrStopAlreadyAssigned)
		assert.True(t, s.IsOnRoute(9))
		assert.Equal(t, 1, s.Position())
	})

	t.Run("should reject invalid route or position", func(t *testing.T) {
		s := newStop(t)

		assert.ErrorIs(t, s.AssignTo(0, 1), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, s.AssignTo(9, 0), errs.ErrValueIsInvalid)
		assert.Nil(t, s.RouteID())
	})
}

func TestStop_Detach(t *testing.T) {
	s, err := stop.RestoreStop(1, "Junín 40", nil, nil, kernel.Unset, ptr(int64(2)), 5, stop.Delivered)
	require.NoError(t, err)

	s.Detach()

	assert.Nil(t, s.RouteID())
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, stop.Pending, s.Status())
}

func TestStop_StatusChanges(t *testing.T) {
	s, err := stop.RestoreStop(1, "Junín 40", nil, nil, kernel.Unset, ptr(int64(2)), 1, stop.Pending)
	require.NoError(t, err)

	s.Dispatch()
	assert.Equal(t, stop.InTransit, s.Status())

	s.Recall()
	assert.Equal(t, stop.Pending, s.Status())

	require.NoError(t, s.AdvanceStatus())
	assert.Equal(t, stop.Delivered, s.Status())
	require.NoError(t, s.AdvanceStatus())
	assert.Equal(t, stop.Cancelled, s.Status())
	require.NoError(t, s.AdvanceStatus())
	assert.Equal(t, stop.Pending, s.Status())
}
