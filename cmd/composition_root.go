package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	sequencer  services.RouteSequencer
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	sequencer, err := services.NewRouteSequencer(
		cfg.Depot,
		services.NewTwoOptRefiner(cfg.TwoOptMaxPasses),
		services.NewFallbackOrderer(cfg.CollationLocale),
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, cfg.DBLockTimeout),
		sequencer:  sequencer,
		logger:     logger,
	}, nil
}

// Handlers wires every use case served over HTTP.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		CreateRoute:       c.CreateCreateRouteCommandHandler(),
		UpdateRoute:       c.CreateUpdateRouteCommandHandler(),
		DeleteRoute:       c.CreateDeleteRouteCommandHandler(),
		AssignStops:       c.CreateAssignStopsCommandHandler(),
		OptimizeRoute:     c.CreateOptimizeRouteCommandHandler(),
		StartRoute:        c.CreateStartRouteCommandHandler(),
		FinishRoute:       c.CreateFinishRouteCommandHandler(),
		RescheduleRoute:   c.CreateRescheduleRouteCommandHandler(),
		CreateStop:        c.CreateCreateStopCommandHandler(),
		AdvanceStopStatus: c.CreateAdvanceStopStatusCommandHandler(),

		GetRoutes:          c.CreateGetRoutesQueryHandler(),
		GetUnassignedStops: c.CreateGetUnassignedStopsQueryHandler(),
		GetZones:           c.CreateGetZonesQueryHandler(),
	}
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRouteCommandHandler() commands.UpdateRouteCommandHandler {
	return commands.NewUpdateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	return commands.NewDeleteRouteCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateAssignStopsCommandHandler() commands.AssignStopsCommandHandler {
	return commands.NewAssignStopsCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateOptimizeRouteCommandHandler() commands.OptimizeRouteCommandHandler {
	return commands.NewOptimizeRouteCommandHandler(c.uowFactoryFunc(), c.sequencer, c.logger)
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	return commands.NewStartRouteCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateFinishRouteCommandHandler() commands.FinishRouteCommandHandler {
	return commands.NewFinishRouteCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateRescheduleRouteCommandHandler() commands.RescheduleRouteCommandHandler {
	return commands.NewRescheduleRouteCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateCreateStopCommandHandler() commands.CreateStopCommandHandler {
	var f commands.StopUoWFactory = FuncStopUoWFactory(func() commands.StopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStopCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceStopStatusCommandHandler() commands.AdvanceStopStatusCommandHandler {
	return commands.NewAdvanceStopStatusCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedStopsQueryHandler() queries.GetUnassignedStopsQueryHandler {
	return queries.NewGetUnassignedStopsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetZonesQueryHandler() queries.GetZonesQueryHandler {
	return queries.NewGetZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncStopUoWFactory func() commands.StopUoW

func (f FuncStopUoWFactory) Create() commands.StopUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
