package main

import (
	"context"

	"weather-dash/internal/types"
)

// Condition is a weather code with its classification and icon URL
type Condition struct {
	types.Weather
	IconURL string `json:"icon_url" example:"https://openweathermap.org/img/wn/10d@4x.png" doc:"Large icon URL"`
}

func newCondition(code int) Condition {
	w := types.NewWeather(code)
	return Condition{Weather: w, IconURL: w.IconURL(types.IconLarge)}
}

// ListConditionsOutput represents the classifier table
type ListConditionsOutput struct {
	Body struct {
		Conditions []Condition `json:"conditions"`
		Fallback   Condition   `json:"fallback" doc:"Returned for codes not in the table"`
	}
}

// GetConditionInput defines the path parameters for the classify endpoint
type GetConditionInput struct {
	Code int `path:"code" example:"61" doc:"WMO weather code, any integer"`
}

// GetConditionOutput represents a single classification
type GetConditionOutput struct {
	Body Condition
}

// ConvertInput defines the query parameters for the convert endpoint
type ConvertInput struct {
	Value float64 `query:"value" required:"true" example:"100" doc:"Temperature in the unit opposite to 'to'"`
	To    string  `query:"to" required:"true" enum:"C,F" doc:"Unit to convert into"`
}

// ConvertOutput represents a converted temperature
type ConvertOutput struct {
	Body struct {
		Value int        `json:"value" example:"212" doc:"Converted and rounded temperature"`
		Unit  types.Unit `json:"unit" example:"F"`
	}
}

func (app *App) handleListConditions(ctx context.Context, input *struct{}) (*ListConditionsOutput, error) {
	codes := types.KnownWeatherCodes()

	resp := &ListConditionsOutput{}
	resp.Body.Conditions = make([]Condition, 0, len(codes))
	for _, code := range codes {
		resp.Body.Conditions = append(resp.Body.Conditions, newCondition(int(code)))
	}
	resp.Body.Fallback = Condition{
		Weather: types.Weather{Code: -1, WeatherInfo: types.UnknownWeather},
		IconURL: types.UnknownWeather.IconURL(types.IconLarge),
	}
	return resp, nil
}

// handleGetCondition never fails: unknown codes get the fallback classification
func (app *App) handleGetCondition(ctx context.Context, input *GetConditionInput) (*GetConditionOutput, error) {
	return &GetConditionOutput{Body: newCondition(input.Code)}, nil
}

func (app *App) handleConvert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
	unit := types.Unit(input.To)

	resp := &ConvertOutput{}
	resp.Body.Value = types.Convert(input.Value, unit)
	resp.Body.Unit = unit
	return resp, nil
}
