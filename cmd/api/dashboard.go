package main

import (
	"context"

	"weather-dash/internal/dashboard"
	"weather-dash/internal/types"

	"github.com/danielgtaylor/huma/v2"
)

// GetDashboardInput defines the query parameters for the city dashboard endpoint
type GetDashboardInput struct {
	City string `query:"city" example:"New York" doc:"City name to geocode"`
	Unit string `query:"unit" enum:"C,F" doc:"Display unit; defaults to the stored preference"`
}

// GetDashboardPointInput defines the query parameters for the coordinate dashboard endpoint
type GetDashboardPointInput struct {
	Latitude  float64 `query:"latitude" required:"true" example:"40.71427" doc:"Latitude in decimal degrees, -90 to 90"`
	Longitude float64 `query:"longitude" required:"true" example:"-74.00597" doc:"Longitude in decimal degrees, -180 to 180"`
	Unit      string  `query:"unit" enum:"C,F" doc:"Display unit; defaults to the stored preference"`
}

// DashboardOutput represents the rendered dashboard
type DashboardOutput struct {
	Body dashboard.View
}

func (app *App) handleGetDashboard(ctx context.Context, input *GetDashboardInput) (*DashboardOutput, error) {
	view, err := app.dashboard.ByCity(ctx, input.City, types.Unit(input.Unit))
	if err != nil {
		return nil, app.dashboardError(err, "city", input.City)
	}
	return &DashboardOutput{Body: *view}, nil
}

func (app *App) handleGetDashboardPoint(ctx context.Context, input *GetDashboardPointInput) (*DashboardOutput, error) {
	view, err := app.dashboard.ByCoordinates(ctx, input.Latitude, input.Longitude, types.Unit(input.Unit))
	if err != nil {
		return nil, app.dashboardError(err, "latitude", input.Latitude, "longitude", input.Longitude)
	}
	return &DashboardOutput{Body: *view}, nil
}

// dashboardError maps service errors onto HTTP errors. Anything that is not
// a missing place or bad input is logged and reported as an upstream failure.
func (app *App) dashboardError(err error, args ...any) error {
	switch {
	case dashboard.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case dashboard.IsBadInput(err):
		return huma.Error400BadRequest(err.Error())
	default:
		app.logger.Error("failed to build dashboard", append(args, "error", err)...)
		return huma.Error502BadGateway("something went wrong")
	}
}
