package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAssignStopsCommand(t *testing.T) {
	tests := []struct {
		name    string
		routeID int64
		stopIDs []int64
		wantErr error
	}{
		{name: "valid", routeID: 1, stopIDs: []int64{3, 1, 2}},
		{name: "empty list", routeID: 1, stopIDs: nil, wantErr: errs.ErrValueIsRequired},
		{name: "non-positive stop id", routeID: 1, stopIDs: []int64{3, 0}, wantErr: errs.ErrValueIsInvalid},
		{name: "duplicate stop id", routeID: 1, stopIDs: []int64{3, 3}, wantErr: errs.ErrValueIsInvalid},
		{name: "bad route id", routeID: -1, stopIDs: []int64{3}, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewAssignStopsCommand(tt.routeID, tt.stopIDs)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stopIDs, cmd.StopIDs())
			assert.Equal(t, tt.routeID, cmd.RouteID())
		})
	}
}

func TestAssignStopsCommandHandler_Handle_AppendsAfterHighestPosition(t *testing.T) {
	ctx := t.Context()
	existing := routeStop(t, 10, 1, stop.Pending, kernel.Unset)
	r := testRoute(t, route.Scheduled, existing)
	incoming := []*stop.Stop{looseStop(t, 21), looseStop(t, 20)}
	cmd, _ := commands.NewAssignStopsCommand(testRouteID, []int64{21, 20})

	routeRepo := new(MockRouteRepository)
	stopRepo := new(MockStopRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("StopRepository").Return(stopRepo).Once(),
		routeRepo.On("GetForUpdate", mock.Anything, testRouteID).Return(r, nil).Once(),
		stopRepo.On("GetForUpdate", mock.Anything, []int64{21, 20}).Return(incoming, nil).Once(),
		stopRepo.On("Update", mock.Anything, incoming[0]).Return(nil).Once(),
		stopRepo.On("Update", mock.Anything, incoming[1]).Return(nil).Once(),
		stopRepo.On("UpdatePositions", mock.Anything, testRouteID, []int64{10, 21, 20}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	got, err := commands.NewAssignStopsCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 21, 20}, got.StopIDs())
	for i, s := range got.Stops() {
		assert.Equal(t, i+1, s.Position())
		assert.Equal(t, stop.Pending, s.Status())
		assert.True(t, s.IsOnRoute(testRouteID))
	}
	routeRepo.AssertExpectations(t)
	stopRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignStopsCommandHandler_Handle_StopOnAnotherRoute(t *testing.T) {
	ctx := t.Context()
	r := testRoute(t, route.Scheduled)
	otherRoute := int64(99)
	taken, err := stop.RestoreStop(30, "Calle 3", nil, nil, kernel.Unset, &otherRoute, 1, stop.Pending)
	require.NoError(t, err)
	cmd, _ := commands.NewAssignStopsCommand(testRouteID, []int64{30})

	routeRepo := new(MockRouteRepository)
	stopRepo := new(MockStopRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("StopRepository").Return(stopRepo).Once()
	routeRepo.On("GetForUpdate", mock.Anything, testRouteID).Return(r, nil).Once()
	stopRepo.On("GetForUpdate", mock.Anything, []int64{30}).Return([]*stop.Stop{taken}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewAssignStopsCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.True(t, errs.IsValidation(err))
	stopRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	stopRepo.AssertNotCalled(t, "UpdatePositions", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignStopsCommandHandler_Handle_FinishedRoute(t *testing.T) {
	ctx := t.Context()
	r := testRoute(t, route.Finished)
	cmd, _ := commands.NewAssignStopsCommand(testRouteID, []int64{21})

	routeRepo := new(MockRouteRepository)
	stopRepo := new(MockStopRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("StopRepository").Return(stopRepo).Once()
	routeRepo.On("GetForUpdate", mock.Anything, testRouteID).Return(r, nil).Once()
	stopRepo.On("GetForUpdate", mock.Anything, []int64{21}).Return([]*stop.Stop{looseStop(t, 21)}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewAssignStopsCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, route.ErrRouteIsFinished)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignStopsCommandHandler_Handle_UnknownStop(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignStopsCommand(testRouteID, []int64{21, 404})

	routeRepo := new(MockRouteRepository)
	stopRepo := new(MockStopRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("StopRepository").Return(stopRepo).Once()
	routeRepo.On("GetForUpdate", mock.Anything, testRouteID).Return(testRoute(t, route.Scheduled), nil).Once()
	stopRepo.On("GetForUpdate", mock.Anything, []int64{21, 404}).
		Return(nil, errs.NewObjectNotFoundError("stop", int64(404))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewAssignStopsCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
