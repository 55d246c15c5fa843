package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id int64) (*route.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) GetForUpdate(ctx context.Context, id int64) (*route.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStopRepository struct{ mock.Mock }

func (m *MockStopRepository) Add(ctx context.Context, s *stop.Stop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStopRepository) Update(ctx context.Context, s *stop.Stop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStopRepository) Get(ctx context.Context, id int64) (*stop.Stop, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*stop.Stop)
	return s, args.Error(1)
}

func (m *MockStopRepository) GetForUpdate(ctx context.Context, ids []int64) ([]*stop.Stop, error) {
	args := m.Called(ctx, ids)
	stops, _ := args.Get(0).([]*stop.Stop)
	return stops, args.Error(1)
}

func (m *MockStopRepository) GetUnassigned(ctx context.Context) ([]*stop.Stop, error) {
	args := m.Called(ctx)
	stops, _ := args.Get(0).([]*stop.Stop)
	return stops, args.Error(1)
}

func (m *MockStopRepository) UpdatePositions(ctx context.Context, routeID int64, orderedIDs []int64) error {
	args := m.Called(ctx, routeID, orderedIDs)
	return args.Error(0)
}

func (m *MockStopRepository) UpdateStatuses(ctx context.Context, ids []int64, from, to stop.Status) error {
	args := m.Called(ctx, ids, from, to)
	return args.Error(0)
}

func (m *MockStopRepository) DetachFromRoute(ctx context.Context, routeID int64) error {
	args := m.Called(ctx, routeID)
	return args.Error(0)
}

// MockUoW satisfies UoW, RouteUoW and StopUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockUoW) StopRepository() ports.StopRepository {
	args := m.Called()
	return args.Get(0).(ports.StopRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockStopUoWFactory struct{ mock.Mock }

func (m *MockStopUoWFactory) Create() commands.StopUoW {
	args := m.Called()
	return args.Get(0).(commands.StopUoW)
}
