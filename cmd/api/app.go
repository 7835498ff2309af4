package main

import (
	"fmt"
	"log/slog"

	"weather-dash/internal/config"
	"weather-dash/internal/dashboard"
	"weather-dash/internal/location"
	"weather-dash/internal/types"
	"weather-dash/internal/weather"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router    *gin.Engine
	api       huma.API
	logger    *slog.Logger
	cfg       *config.Config
	dashboard dashboard.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	locationSvc, err := location.NewLocationService(cfg, logger)
	if err != nil {
		return nil, err
	}

	dashboardSvc := dashboard.NewDashboardService(
		locationSvc,
		weather.NewWeatherService(cfg, logger),
		dashboard.NewUnitPreference(types.Unit(cfg.App.DefaultUnit)),
		cfg.App.About,
		logger,
	)

	app, err := newApp(cfg, logger, dashboardSvc)
	if err != nil {
		return nil, err
	}

	logger.Info("application initialized",
		"default_city", cfg.App.DefaultCity,
		"forecast_days", cfg.App.ForecastDays,
	)

	return app, nil
}

func newApp(cfg *config.Config, logger *slog.Logger, dashboardSvc dashboard.Service) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), requestID(logger))

	if err := loadTemplates(router); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Huma operations share the gin engine with the HTML pages
	humaConfig := huma.DefaultConfig("Weather Dash API", "1.0.0")
	humaConfig.Info.Description = "Current conditions and daily forecasts for any city, backed by Open-Meteo"
	humaConfig.Servers = []*huma.Server{
		{URL: "http://localhost" + cfg.GetServerAddr(), Description: "Development server"},
	}

	app := &App{
		router:    router,
		api:       humagin.New(router, humaConfig),
		logger:    logger,
		cfg:       cfg,
		dashboard: dashboardSvc,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
