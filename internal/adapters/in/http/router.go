package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho builds the HTTP server: middleware, API routes, the API description and the
// Swagger UI.
func NewEcho(ctx context.Context, server *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	swaggerUI, err := SwaggerHandler(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", OpenAPIHandler(doc))
	e.GET("/swagger/*", swaggerUI)

	RegisterRoutes(e.Group("/api/v1", validator), server)

	return e, nil
}

// RegisterRoutes mounts the API handlers on g, which is expected to be rooted at /api/v1.
func RegisterRoutes(g *echo.Group, s *Server) {
	g.GET("/routes", s.GetRoutes)
	g.POST("/routes", s.CreateRoute)
	g.PATCH("/routes/:id", s.UpdateRoute)
	g.DELETE("/routes/:id", s.DeleteRoute)
	g.POST("/routes/:id/stops", s.AssignStops)
	g.POST("/routes/:id/optimize", s.OptimizeRoute)
	g.POST("/routes/:id/start", s.StartRoute)
	g.POST("/routes/:id/finish", s.FinishRoute)
	g.POST("/routes/:id/reschedule", s.RescheduleRoute)

	g.GET("/stops/unassigned", s.GetUnassignedStops)
	g.POST("/stops", s.CreateStop)
	g.POST("/stops/:id/advance", s.AdvanceStopStatus)

	g.GET("/zones", s.GetZones)
}
