package weather

import (
	"time"

	"weather-dash/internal/types"
)

// Forecast is the provider-agnostic result of a forecast fetch. Times are in
// the location's timezone.
type Forecast struct {
	Timestamp time.Time         `json:"timestamp"`
	Timezone  string            `json:"timezone"`
	Current   CurrentConditions `json:"current"`
	Daily     []DailyForecast   `json:"daily"`
}

type CurrentConditions struct {
	Time                time.Time         `json:"time"`
	Weather             types.Weather     `json:"weather"`
	Temperature         types.Temperature `json:"temperature"`
	ApparentTemperature types.Temperature `json:"apparent_temperature"`
	RelativeHumidity    float64           `json:"relative_humidity" doc:"Percent, 0-100"`
	SurfacePressure     float64           `json:"surface_pressure" doc:"hPa"`
	Wind                types.Wind        `json:"wind"`
	CloudCover          float64           `json:"cloud_cover" doc:"Percent, 0-100"`

	// Meters; nil when the provider has no value for the location
	Visibility *float64 `json:"visibility,omitempty"`
}

// DailyForecast is one day of the series. Weather and the temperatures are nil
// when the provider has no value for the day.
type DailyForecast struct {
	Date            time.Time          `json:"date"`
	Weather         *types.Weather     `json:"weather"`
	HighTemperature *types.Temperature `json:"high_temperature"`
	LowTemperature  *types.Temperature `json:"low_temperature"`
	Sunrise         time.Time          `json:"sunrise"`
	Sunset          time.Time          `json:"sunset"`
}
