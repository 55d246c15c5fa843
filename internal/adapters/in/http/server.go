package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/stop"
	"logistics/internal/core/domain/services"
)

type (
	CreateRouteHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRouteCommand) (*route.Route, error)
	}
	UpdateRouteHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateRouteCommand) (*route.Route, error)
	}
	DeleteRouteHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteRouteCommand) error
	}
	AssignStopsHandler interface {
		Handle(ctx context.Context, cmd commands.AssignStopsCommand) (*route.Route, error)
	}
	OptimizeRouteHandler interface {
		Handle(ctx context.Context, cmd commands.OptimizeRouteCommand) (services.Sequence, error)
	}
	StartRouteHandler interface {
		Handle(ctx context.Context, cmd commands.StartRouteCommand) (*route.Route, error)
	}
	FinishRouteHandler interface {
		Handle(ctx context.Context, cmd commands.FinishRouteCommand) (*route.Route, error)
	}
	RescheduleRouteHandler interface {
		Handle(ctx context.Context, cmd commands.RescheduleRouteCommand) (*route.Route, error)
	}
	CreateStopHandler interface {
		Handle(ctx context.Context, cmd commands.CreateStopCommand) (*stop.Stop, error)
	}
	AdvanceStopStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceStopStatusCommand) (*stop.Stop, error)
	}

	GetRoutesHandler interface {
		Handle(ctx context.Context, query queries.GetRoutesQuery) ([]queries.RouteView, error)
	}
	GetUnassignedStopsHandler interface {
		Handle(ctx context.Context, query queries.GetUnassignedStopsQuery) ([]queries.StopView, error)
	}
	GetZonesHandler interface {
		Handle(ctx context.Context, query queries.GetZonesQuery) ([]queries.ZoneView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateRoute       CreateRouteHandler
	UpdateRoute       UpdateRouteHandler
	DeleteRoute       DeleteRouteHandler
	AssignStops       AssignStopsHandler
	OptimizeRoute     OptimizeRouteHandler
	StartRoute        StartRouteHandler
	FinishRoute       FinishRouteHandler
	RescheduleRoute   RescheduleRouteHandler
	CreateStop        CreateStopHandler
	AdvanceStopStatus AdvanceStopStatusHandler

	GetRoutes          GetRoutesHandler
	GetUnassignedStops GetUnassignedStopsHandler
	GetZones           GetZonesHandler
}

// Server translates HTTP requests into commands and queries and their results into JSON.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger}
}

// GetRoutes handles GET /api/v1/routes.
func (s *Server) GetRoutes(ctx echo.Context) error {
	var date *openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, false, "date", ctx.QueryParams(), &date); err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}

	var day *time.Time
	if date != nil {
		day = &date.Time
	}

	views, err := s.h.GetRoutes.Handle(ctx.Request().Context(), queries.NewGetRoutesQuery(day))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]Route, len(views))
	for i, v := range views {
		response[i] = routeFromView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body NewRoute
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateRouteCommand(body.ScheduledDate.Time, body.DriverName)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	r, err := s.h.CreateRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, routeFromDomain(r))
}

// UpdateRoute handles PATCH /api/v1/routes/{id}.
func (s *Server) UpdateRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body RoutePatch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var date *time.Time
	if body.ScheduledDate != nil {
		date = &body.ScheduledDate.Time
	}

	cmd, err := commands.NewUpdateRouteCommand(id, body.DriverName, date)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	r, err := s.h.UpdateRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, routeFromDomain(r))
}

// DeleteRoute handles DELETE /api/v1/routes/{id}.
func (s *Server) DeleteRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteRouteCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.h.DeleteRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignStops handles POST /api/v1/routes/{id}/stops.
func (s *Server) AssignStops(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body AssignStops
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignStopsCommand(id, body.StopIDs)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	r, err := s.h.AssignStops.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, routeFromDomain(r))
}

// OptimizeRoute handles POST /api/v1/routes/{id}/optimize. The body is optional.
func (s *Server) OptimizeRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body OptimizeRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewOptimizeRouteCommand(id, body.StartLat, body.StartLng)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	seq, err := s.h.OptimizeRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, optimizeResultFromSequence(seq))
}

// StartRoute handles POST /api/v1/routes/{id}/start.
func (s *Server) StartRoute(ctx echo.Context) error {
	return s.transition(ctx, func(c context.Context, id int64) (*route.Route, error) {
		cmd, err := commands.NewStartRouteCommand(id)
		if err != nil {
			return nil, err
		}
		return s.h.StartRoute.Handle(c, cmd)
	})
}

// FinishRoute handles POST /api/v1/routes/{id}/finish.
func (s *Server) FinishRoute(ctx echo.Context) error {
	return s.transition(ctx, func(c context.Context, id int64) (*route.Route, error) {
		cmd, err := commands.NewFinishRouteCommand(id)
		if err != nil {
			return nil, err
		}
		return s.h.FinishRoute.Handle(c, cmd)
	})
}

// RescheduleRoute handles POST /api/v1/routes/{id}/reschedule.
func (s *Server) RescheduleRoute(ctx echo.Context) error {
	return s.transition(ctx, func(c context.Context, id int64) (*route.Route, error) {
		cmd, err := commands.NewRescheduleRouteCommand(id)
		if err != nil {
			return nil, err
		}
		return s.h.RescheduleRoute.Handle(c, cmd)
	})
}

func (s *Server) transition(ctx echo.Context, run func(context.Context, int64) (*route.Route, error)) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	r, err := run(ctx.Request().Context(), id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, routeFromDomain(r))
}

// GetUnassignedStops handles GET /api/v1/stops/unassigned.
func (s *Server) GetUnassignedStops(ctx echo.Context) error {
	views, err := s.h.GetUnassignedStops.Handle(ctx.Request().Context(), queries.NewGetUnassignedStopsQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]Stop, len(views))
	for i, v := range views {
		response[i] = stopFromView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateStop handles POST /api/v1/stops.
func (s *Server) CreateStop(ctx echo.Context) error {
	var body NewStop
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateStopCommand(body.Address, body.ZoneID, body.Lat, body.Lng)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	created, err := s.h.CreateStop.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, stopFromDomain(created))
}

// AdvanceStopStatus handles POST /api/v1/stops/{id}/advance.
func (s *Server) AdvanceStopStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdvanceStopStatusCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	advanced, err := s.h.AdvanceStopStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, stopFromDomain(advanced))
}

// GetZones handles GET /api/v1/zones.
func (s *Server) GetZones(ctx echo.Context) error {
	views, err := s.h.GetZones.Handle(ctx.Request().Context(), queries.NewGetZonesQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]Zone, len(views))
	for i, v := range views {
		response[i] = Zone{ID: v.ID, Name: v.Name, PriceMultiplier: v.PriceMultiplier}
	}
	return ctx.JSON(http.StatusOK, response)
}

func pathID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, fmt.Errorf("Invalid format for parameter id: %w", err)
	}
	return id, nil
}
