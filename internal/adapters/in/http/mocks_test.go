package http_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type CreateRouteHandlerMock struct{ mock.Mock }

func (m *CreateRouteHandlerMock) Handle(ctx context.Context, cmd commands.CreateRouteCommand) (*route.Route, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

type UpdateRouteHandlerMock struct{ mock.Mock }

func (m *UpdateRouteHandlerMock) Handle(ctx context.Context, cmd commands.UpdateRouteCommand) (*route.Route, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

type DeleteRouteHandlerMock struct{ mock.Mock }

func (m *DeleteRouteHandlerMock) Handle(ctx context.Context, cmd commands.DeleteRouteCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type AssignStopsHandlerMock struct{ mock.Mock }

func (m *AssignStopsHandlerMock) Handle(ctx context.Context, cmd commands.AssignStopsCommand) (*route.Route, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

type OptimizeRouteHandlerMock struct{ mock.Mock }

func (m *OptimizeRouteHandlerMock) Handle(ctx context.Context, cmd commands.OptimizeRouteCommand) (services.Sequence, error) {
	args := m.Called(ctx, cmd)
	seq, _ := args.Get(0).(services.Sequence)
	return seq, args.Error(1)
}

type StartRouteHandlerMock struct{ mock.Mock }

func (m *StartRouteHandlerMock) Handle(ctx context.Context, cmd commands.StartRouteCommand) (*route.Route, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

type CreateStopHandlerMock struct{ mock.Mock }

func (m *CreateStopHandlerMock) Handle(ctx context.Context, cmd commands.CreateStopCommand) (*stop.Stop, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*stop.Stop)
	return s, args.Error(1)
}

type AdvanceStopStatusHandlerMock struct{ mock.Mock }

func (m *AdvanceStopStatusHandlerMock) Handle(ctx context.Context, cmd commands.AdvanceStopStatusCommand) (*stop.Stop, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*stop.Stop)
	return s, args.Error(1)
}

type GetRoutesHandlerMock struct{ mock.Mock }

func (m *GetRoutesHandlerMock) Handle(ctx context.Context, query queries.GetRoutesQuery) ([]queries.RouteView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.RouteView)
	return views, args.Error(1)
}

type GetZonesHandlerMock struct{ mock.Mock }

func (m *GetZonesHandlerMock) Handle(ctx context.Context, query queries.GetZonesQuery) ([]queries.ZoneView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.ZoneView)
	return views, args.Error(1)
}
