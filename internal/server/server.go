// Package server exposes the scheduling engine and run history over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/dosewise/dosewise/internal/catalog"
	"github.com/dosewise/dosewise/internal/engine"
	"github.com/dosewise/dosewise/internal/model"
	"github.com/dosewise/dosewise/internal/store"
)

// Server wraps an echo instance with the scheduling routes.
type Server struct {
	echo   *echo.Echo
	logger zerolog.Logger
	store  store.Store
}

// New builds the server and registers all routes.
func New(logger zerolog.Logger, st store.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, logger: logger, store: st}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(s.requestLogger)

	e.GET("/healthz", s.handleHealthz)

	api := e.Group("/api/v1")
	api.POST("/schedule", s.handleSchedule)
	api.GET("/profiles", s.handleProfiles)
	api.GET("/rules", s.handleRules)
	api.GET("/history", s.handleHistoryList)
	api.GET("/history/:id", s.handleHistoryGet)

	return s
}

// Start begins serving on addr and blocks until shutdown.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.logger.Info().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// scheduleRequest is the POST /api/v1/schedule body. Additional rules use the
// same constraint spelling as the rules YAML files, in JSON.
type scheduleRequest struct {
	Date            string                  `json:"date"`
	Items           []model.InputItem       `json:"items"`
	WakeTime        *model.TimeOfDay        `json:"wake_time,omitempty"`
	Meals           model.MealTimes         `json:"meals,omitempty"`
	AdditionalRules []model.InteractionRule `json:"additional_rules,omitempty"`
	Save            bool                    `json:"save,omitempty"`
}

type scheduleResponse struct {
	model.ScheduleOutput
	RunID string `json:"run_id,omitempty"`
}

func (s *Server) handleSchedule(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one item is required")
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	output := engine.Generate(engine.Request{
		Date:     req.Date,
		Items:    req.Items,
		Profiles: catalog.Profiles(),
		Rules:    catalog.ActiveRules(req.AdditionalRules),
		WakeTime: req.WakeTime,
		Meals:    req.Meals,
	})

	resp := scheduleResponse{ScheduleOutput: output}

	if req.Save {
		wake := engine.DefaultWakeTime
		if req.WakeTime != nil {
			wake = *req.WakeTime
		}
		rec, err := s.store.Save(c.Request().Context(), store.SaveParams{
			Date:     req.Date,
			WakeTime: wake,
			Meals:    req.Meals,
			Items:    req.Items,
			Output:   output,
		})
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "save run").SetInternal(err)
		}
		resp.RunID = rec.ID
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleProfiles(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Profiles())
}

func (s *Server) handleRules(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Rules())
}

func (s *Server) handleHistoryList(c echo.Context) error {
	var p store.ListParams
	p.Date = c.QueryParam("date")
	if v := c.QueryParam("min_confidence"); v != "" {
		if err := echo.QueryParamsBinder(c).Int("min_confidence", &p.MinConfidence).BindError(); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_confidence")
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if err := echo.QueryParamsBinder(c).Int("limit", &p.Limit).BindError(); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}

	records, err := s.store.List(c.Request().Context(), p)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "list runs").SetInternal(err)
	}
	if records == nil {
		records = []model.ScheduleRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

func (s *Server) handleHistoryGet(c echo.Context) error {
	rec, err := s.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, rec)
}
