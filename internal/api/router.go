package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/planetary/planetary-api/docs"
	"github.com/planetary/planetary-api/internal/api/handler"
	"github.com/planetary/planetary-api/internal/api/middleware"
	"github.com/planetary/planetary-api/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Auth    ports.AuthService
	Planets ports.PlanetService
	Tokens  ports.TokenVerifier
	// Checks feed the readiness probe, keyed by dependency name.
	Checks map[string]handler.Check
	// Registry receives the HTTP request metrics. A fresh registry is used
	// when nil. /metrics serves it together with the default registry.
	Registry *prometheus.Registry
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "planetary",
		Subsystem:  "http",
		Registerer: reg,
	}))

	greeting := handler.NewGreetingHandler()
	planets := handler.NewPlanetHandler(deps.Planets)
	auth := handler.NewAuthHandler(deps.Auth)
	requireToken := middleware.Auth(deps.Tokens)

	// --- Greeting routes ---
	e.GET("/", greeting.HelloWorld)
	e.GET("/super_simple", greeting.SuperSimple)
	e.GET("/error", greeting.NotFound)
	e.GET("/parameters", greeting.Parameters)
	e.GET("/url_variables/:name/:age", greeting.URLVariables)

	// --- Auth routes ---
	e.POST("/register", auth.Register)
	e.POST("/login", auth.Login)
	e.GET("/retrieve_password/:email", auth.RetrievePassword)

	// --- Planet catalog ---
	e.GET("/planets", planets.List)
	e.GET("/planet_details/:id", planets.Details)
	e.POST("/add_planet", planets.Add, requireToken)
	e.PUT("/update_planet", planets.UpdateByName, requireToken)
	e.DELETE("/delete_planet/:name", planets.DeleteByName, requireToken)
	e.PUT("/planets/:id", planets.UpdateByID, requireToken)
	e.DELETE("/planets/:id", planets.DeleteByID, requireToken)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{reg, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
