package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateStopCommand(t *testing.T) {
	zone := int64(2)
	badZone := int64(0)
	lat, lng := -26.8301, -65.2044
	tooSouth := -91.0

	t.Run("geolocated", func(t *testing.T) {
		cmd, err := commands.NewCreateStopCommand(" Av. Sarmiento 450 ", &zone, &lat, &lng)
		require.NoError(t, err)
		assert.Equal(t, "Av. Sarmiento 450", cmd.Address())
		assert.Equal(t, &zone, cmd.ZoneID())
		assert.True(t, cmd.Coordinate().IsEqual(kernel.NewCoordinate(lat, lng)))
	})

	t.Run("without coordinates", func(t *testing.T) {
		cmd, err := commands.NewCreateStopCommand("Av. Sarmiento 450", nil, nil, nil)
		require.NoError(t, err)
		assert.False(t, cmd.Coordinate().IsUsable())
		assert.Nil(t, cmd.ZoneID())
	})

	t.Run("collects every problem", func(t *testing.T) {
		_, err := commands.NewCreateStopCommand("", &badZone, &tooSouth, &lng)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCreateStopCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateStopCommand("Av. Sarmiento 450", nil, nil, nil)

	repo := new(MockStopRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StopRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*stop.Stop")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*stop.Stop).AttachID(31))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockStopUoWFactory)
	factory.On("Create").Return(uow).Once()

	s, err := commands.NewCreateStopCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(31), s.ID())
	assert.Equal(t, stop.Pending, s.Status())
	assert.Nil(t, s.RouteID())
	assert.Zero(t, s.Position())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}
