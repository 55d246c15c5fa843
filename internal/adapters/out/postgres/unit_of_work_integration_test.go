package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/stoprepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&stoprepo.ZoneDTO{}, &routerepo.RouteDTO{}, &stoprepo.StopDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, 300*time.Millisecond)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE stops, routes, zones RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.RouteRepository())
	suite.NotNil(uow1.StopRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RouteAndStopsCommitTogether() {
	ctx := context.Background()
	r := suite.newRoute()
	s := suite.newStop("Av. Sarmiento 450")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RouteRepository().Add(ctx, r))
	suite.Require().NoError(uow.StopRepository().Add(ctx, s))

	added, err := r.Assign([]*stop.Stop{s})
	suite.Require().NoError(err)
	suite.Require().Len(added, 1)
	suite.Require().NoError(uow.StopRepository().Update(ctx, s))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().RouteRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal([]int64{s.ID()}, stored.StopIDs())
	suite.Equal(1, stored.Stops()[0].Position())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	r := suite.newRoute()
	s := suite.newStop("Av. Sarmiento 450")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RouteRepository().Add(ctx, r))
	suite.Require().NoError(uow.StopRepository().Add(ctx, s))

	_, err := uow.RouteRepository().Get(ctx, r.ID())
	suite.Require().NoError(err, "Route should be visible inside its transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.RouteRepository().Get(ctx, r.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.StopRepository().Get(ctx, s.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	r1 := suite.newRoute()
	r2 := suite.newRoute()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.RouteRepository().Add(ctx, r1))
	suite.Require().NoError(uow2.RouteRepository().Add(ctx, r2))

	_, err := uow1.RouteRepository().Get(ctx, r2.ID())
	suite.Require().Error(err, "UOW1 should not see route 2")
	_, err = uow2.RouteRepository().Get(ctx, r1.ID())
	suite.Require().Error(err, "UOW2 should not see route 1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.RouteRepository().Get(ctx, r1.ID())
	suite.Require().NoError(err)
	_, err = fresh.RouteRepository().Get(ctx, r2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LockedRouteTimesOut() {
	ctx := context.Background()
	r := suite.newRoute()
	suite.Require().NoError(suite.factory.Create().RouteRepository().Add(ctx, r))

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() {
		_ = holder.Rollback(ctx)
	}()
	_, err := holder.RouteRepository().GetForUpdate(ctx, r.ID())
	suite.Require().NoError(err)

	waiter := suite.factory.Create()
	suite.Require().NoError(waiter.Begin(ctx))
	defer func() {
		_ = waiter.Rollback(ctx)
	}()

	started := time.Now()
	_, err = waiter.RouteRepository().GetForUpdate(ctx, r.ID())

	suite.Require().ErrorIs(err, errs.ErrPersistenceTimeout)
	suite.Less(time.Since(started), 5*time.Second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	r := suite.newRoute()

	suite.Require().NoError(uow.RouteRepository().Add(ctx, r))

	stored, err := suite.factory.Create().RouteRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(r.DriverName(), stored.DriverName())
}

func (suite *UnitOfWorkIntegrationTestSuite) newRoute() *route.Route {
	r, err := route.NewRoute(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Lucía Paz")
	suite.Require().NoError(err)
	return r
}

func (suite *UnitOfWorkIntegrationTestSuite) newStop(address string) *stop.Stop {
	s, err := stop.NewStop(address, nil, kernel.NewCoordinate(-26.83, -65.20))
	suite.Require().NoError(err)
	return s
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
