package main

import (
	"context"

	"weather-dash/internal/types"
)

// UnitOutput represents the stored display unit
type UnitOutput struct {
	Body struct {
		Unit    types.Unit `json:"unit" example:"C" doc:"Current display unit"`
		Changed bool       `json:"changed,omitempty" doc:"Whether the request changed the preference"`
	}
}

// PutUnitInput defines the body of the set-unit endpoint
type PutUnitInput struct {
	Body struct {
		Unit string `json:"unit" enum:"C,F" example:"F" doc:"Display unit"`
	}
}

// AboutOutput represents the about panel
type AboutOutput struct {
	Body struct {
		About string `json:"about" doc:"About panel text"`
	}
}

func (app *App) handleGetUnit(ctx context.Context, input *struct{}) (*UnitOutput, error) {
	resp := &UnitOutput{}
	resp.Body.Unit = app.dashboard.Preference().Get()
	return resp, nil
}

func (app *App) handlePutUnit(ctx context.Context, input *PutUnitInput) (*UnitOutput, error) {
	unit := types.Unit(input.Body.Unit)

	resp := &UnitOutput{}
	resp.Body.Changed = app.dashboard.Preference().Set(unit)
	resp.Body.Unit = unit
	if resp.Body.Changed {
		app.logger.Info("unit preference changed", "unit", unit)
	}
	return resp, nil
}

func (app *App) handleToggleUnit(ctx context.Context, input *struct{}) (*UnitOutput, error) {
	resp := &UnitOutput{}
	resp.Body.Unit = app.dashboard.Preference().Toggle()
	resp.Body.Changed = true
	app.logger.Info("unit preference changed", "unit", resp.Body.Unit)
	return resp, nil
}

func (app *App) handleGetAbout(ctx context.Context, input *struct{}) (*AboutOutput, error) {
	resp := &AboutOutput{}
	resp.Body.About = app.dashboard.About()
	return resp, nil
}
