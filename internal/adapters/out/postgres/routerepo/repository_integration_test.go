package routerepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/stoprepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var scheduledDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

// RouteRepositoryIntegrationTestSuite verifies route persistence against PostgreSQL.
type RouteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *routerepo.GormRouteRepository
	stops      *stoprepo.GormStopRepository
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&stoprepo.ZoneDTO{}, &routerepo.RouteDTO{}, &stoprepo.StopDTO{})
	suite.Require().NoError(err)

	suite.repository = routerepo.NewGormRouteRepository(db)
	suite.stops = stoprepo.NewGormStopRepository(db)
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE stops, routes, zones RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *RouteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *RouteRepositoryIntegrationTestSuite) TestAdd_ValidRoute_Success() {
	ctx := context.Background()
	r := suite.createRoute("Lucía Paz")

	suite.Positive(r.ID())

	stored, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal("Lucía Paz", stored.DriverName())
	suite.True(scheduledDate.Equal(stored.ScheduledDate()))
	suite.Equal(route.Scheduled, stored.Status())
	suite.False(stored.HasStops())
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGet_NonExistentRoute_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGet_StopsOrderedByPositionWithZones() {
	ctx := context.Background()
	zone := stoprepo.ZoneDTO{Name: "Norte", PriceMultiplier: 1.2}
	suite.Require().NoError(suite.db.Create(&zone).Error)

	r := suite.createRoute("Lucía Paz")
	first := suite.createStop("Primera", &zone.ID)
	second := suite.createStop("Segunda", nil)
	_, err := r.Assign([]*stop.Stop{second, first})
	suite.Require().NoError(err)
	for _, s := range r.Stops() {
		suite.Require().NoError(suite.stops.Update(ctx, s))
	}

	stored, err := suite.repository.Get(ctx, r.ID())

	suite.Require().NoError(err)
	suite.Equal([]int64{second.ID(), first.ID()}, stored.StopIDs())
	suite.Equal("Norte", stored.Stops()[1].ZoneName())
	suite.Empty(stored.Stops()[0].ZoneName())
}

func (suite *RouteRepositoryIntegrationTestSuite) TestUpdate_StatusDriverAndDate() {
	ctx := context.Background()
	r := suite.createRoute("Lucía Paz")

	_, err := r.Start()
	suite.Require().NoError(err)
	suite.Require().NoError(r.ChangeDriver("Tomás Ruiz"))
	suite.Require().NoError(r.ChangeDate(scheduledDate.AddDate(0, 0, 1)))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	stored, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(route.InProgress, stored.Status())
	suite.Equal("Tomás Ruiz", stored.DriverName())
	suite.True(scheduledDate.AddDate(0, 0, 1).Equal(stored.ScheduledDate()))
}

func (suite *RouteRepositoryIntegrationTestSuite) TestUpdate_NonExistentRoute_ReturnsNotFoundError() {
	ghost, err := route.RestoreRoute(404, scheduledDate, "Nadie", route.Scheduled, nil)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), ghost)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	r := suite.createRoute("Lucía Paz")

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		locked, err := routerepo.NewGormRouteRepository(tx).GetForUpdate(ctx, r.ID())
		if err != nil {
			return err
		}
		suite.Equal(r.ID(), locked.ID())
		return nil
	})

	suite.Require().NoError(err)
}

func (suite *RouteRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	r := suite.createRoute("Lucía Paz")

	suite.Require().NoError(suite.repository.Delete(ctx, r.ID()))

	_, err := suite.repository.Get(ctx, r.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, r.ID()), errs.ErrObjectNotFound)
}

func (suite *RouteRepositoryIntegrationTestSuite) TestDelete_WithAttachedStops_Fails() {
	ctx := context.Background()
	r := suite.createRoute("Lucía Paz")
	s := suite.createStop("Primera", nil)
	_, err := r.Assign([]*stop.Stop{s})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.stops.Update(ctx, s))

	err = suite.repository.Delete(ctx, r.ID())

	suite.Require().Error(err, "stops must be detached before the route row goes")
}

func (suite *RouteRepositoryIntegrationTestSuite) createRoute(driver string) *route.Route {
	r, err := route.NewRoute(scheduledDate, driver)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), r))
	return r
}

func (suite *RouteRepositoryIntegrationTestSuite) createStop(address string, zoneID *int64) *stop.Stop {
	s, err := stop.NewStop(address, zoneID, kernel.NewCoordinate(-26.83, -65.20))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.stops.Add(context.Background(), s))
	return s
}

func TestRouteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RouteRepositoryIntegrationTestSuite))
}
