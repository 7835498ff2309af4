package weather

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"weather-dash/internal/providers/openmeteo"
	"weather-dash/internal/types"
)

type mockForecastProvider struct {
	response     *openmeteo.ForecastAPIResponse
	err          error
	gotDays      int
	gotTimezone  string
	gotLatitude  float64
	gotLongitude float64
}

func (m *mockForecastProvider) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error) {
	m.gotLatitude = latitude
	m.gotLongitude = longitude
	m.gotDays = forecastDays
	m.gotTimezone = timezone
	return m.response, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadForecastResponse(t *testing.T) *openmeteo.ForecastAPIResponse {
	t.Helper()

	data, err := os.ReadFile("testdata/openmeteo_forecast_response.json")
	if err != nil {
		t.Fatalf("Failed to read testdata file: %v", err)
	}

	var apiResponse openmeteo.ForecastAPIResponse
	if err := json.Unmarshal(data, &apiResponse); err != nil {
		t.Fatalf("Failed to unmarshal API response: %v", err)
	}
	return &apiResponse
}

var newYork = types.ForecastPoint{
	Coordinates: types.NewCoords(40.71427, -74.00597),
	Location:    types.LocationInfo{Name: "New York", Country: "United States", CountryCode: "US"},
	Timezone:    "America/New_York",
}

func TestToTime(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expectZero bool
	}{
		{name: "valid time", input: "2025-01-15T10:30"},
		{name: "invalid format", input: "not a time", expectZero: true},
		{name: "empty string", input: "", expectZero: true},
		{name: "different format", input: "2025-01-15 10:30:00", expectZero: true},
	}

	location, _ := time.LoadLocation("America/New_York")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toTime(tt.input, location)

			if tt.expectZero {
				if !result.IsZero() {
					t.Errorf("toTime(%q) expected zero time, got %v", tt.input, result)
				}
				return
			}

			expected, _ := time.ParseInLocation(dateTimeLayout, tt.input, location)
			if !result.Equal(expected) {
				t.Errorf("toTime(%q) = %v, want %v", tt.input, result, expected)
			}
			if result.Location().String() != "America/New_York" {
				t.Errorf("toTime(%q) location = %v, want America/New_York", tt.input, result.Location())
			}
		})
	}
}

func TestMapForecastAPIResponseToForecast(t *testing.T) {
	apiResponse := loadForecastResponse(t)
	now := time.Date(2025, 1, 6, 20, 4, 0, 0, time.UTC)

	forecast, err := mapForecastAPIResponseToForecast(apiResponse, 5, now)
	if err != nil {
		t.Fatalf("mapForecastAPIResponseToForecast returned error: %v", err)
	}

	if forecast.Timezone != "America/New_York" {
		t.Errorf("Timezone = %v, want America/New_York", forecast.Timezone)
	}
	if got := forecast.Timestamp.Format("15:04"); got != "15:04" {
		t.Errorf("Timestamp local time = %s, want 15:04", got)
	}

	current := forecast.Current
	if current.Weather.Code != 61 || current.Weather.Description != "Slight rain" || current.Weather.Icon != "10d" {
		t.Errorf("Current.Weather = %+v", current.Weather)
	}
	if current.Temperature.Celsius != 18.6 {
		t.Errorf("Current.Temperature.Celsius = %v, want 18.6", current.Temperature.Celsius)
	}
	if current.ApparentTemperature.Celsius != 19.2 {
		t.Errorf("Current.ApparentTemperature.Celsius = %v, want 19.2", current.ApparentTemperature.Celsius)
	}
	if current.RelativeHumidity != 65 || current.CloudCover != 40 || current.SurfacePressure != 1013.2 {
		t.Errorf("Current = %+v", current)
	}
	if current.Wind.SpeedInKph != 12.5 || current.Wind.DirectionCardinal != "SW" {
		t.Errorf("Current.Wind = %+v", current.Wind)
	}
	if current.Visibility == nil || *current.Visibility != 10000 {
		t.Errorf("Current.Visibility = %v, want 10000", current.Visibility)
	}
	if got := current.Time.Format(time.RFC3339); got != "2025-01-06T15:00:00-05:00" {
		t.Errorf("Current.Time = %s", got)
	}

	if len(forecast.Daily) != 5 {
		t.Fatalf("Daily has %d days, want 5", len(forecast.Daily))
	}

	first := forecast.Daily[0]
	if first.HighTemperature.Celsius != 23.7 || first.LowTemperature.Celsius != 14.6 {
		t.Errorf("Daily[0] high/low = %v/%v", first.HighTemperature.Celsius, first.LowTemperature.Celsius)
	}
	if first.Date.Weekday() != time.Monday {
		t.Errorf("Daily[0].Date weekday = %v, want Monday", first.Date.Weekday())
	}
	if first.Sunrise.Format("15:04") != "07:20" || first.Sunset.Format("15:04") != "16:41" {
		t.Errorf("Daily[0] sunrise/sunset = %s/%s", first.Sunrise.Format("15:04"), first.Sunset.Format("15:04"))
	}

	last := forecast.Daily[4]
	if last.Weather.Code != 99 || last.Weather.WeatherInfo != types.UnknownWeather {
		t.Errorf("Daily[4].Weather = %+v, want unknown classification", last.Weather)
	}
}

func TestMapForecastAPIResponseToForecast_Truncates(t *testing.T) {
	apiResponse := loadForecastResponse(t)

	forecast, err := mapForecastAPIResponseToForecast(apiResponse, 3, time.Now())
	if err != nil {
		t.Fatalf("mapForecastAPIResponseToForecast returned error: %v", err)
	}
	if len(forecast.Daily) != 3 {
		t.Errorf("Daily has %d days, want 3", len(forecast.Daily))
	}
}

func TestMapForecastAPIResponseToForecast_NoVisibility(t *testing.T) {
	apiResponse := loadForecastResponse(t)
	apiResponse.Current.Visibility = nil

	forecast, err := mapForecastAPIResponseToForecast(apiResponse, 5, time.Now())
	if err != nil {
		t.Fatalf("mapForecastAPIResponseToForecast returned error: %v", err)
	}
	if forecast.Current.Visibility != nil {
		t.Errorf("Current.Visibility = %v, want nil", *forecast.Current.Visibility)
	}
}

func TestMapForecastAPIResponseToForecast_NullDailyValues(t *testing.T) {
	apiResponse := loadForecastResponse(t)
	apiResponse.Daily.WeatherCode[1] = nil
	apiResponse.Daily.Temperature2MMax[1] = nil
	apiResponse.Daily.Temperature2MMin[2] = nil

	forecast, err := mapForecastAPIResponseToForecast(apiResponse, 5, time.Now())
	if err != nil {
		t.Fatalf("mapForecastAPIResponseToForecast returned error: %v", err)
	}

	second := forecast.Daily[1]
	if second.Weather != nil {
		t.Errorf("Daily[1].Weather = %+v, want nil", *second.Weather)
	}
	if second.HighTemperature != nil {
		t.Errorf("Daily[1].HighTemperature = %+v, want nil", *second.HighTemperature)
	}
	if second.LowTemperature == nil {
		t.Error("Daily[1].LowTemperature = nil, want a value")
	}
	if forecast.Daily[2].LowTemperature != nil {
		t.Errorf("Daily[2].LowTemperature = %+v, want nil", *forecast.Daily[2].LowTemperature)
	}
	if forecast.Daily[2].Weather == nil || forecast.Daily[2].HighTemperature == nil {
		t.Errorf("Daily[2] = %+v, want weather and high", forecast.Daily[2])
	}
}

func TestMapForecastAPIResponseToForecast_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		days   int
		mutate func(*openmeteo.ForecastAPIResponse)
	}{
		{
			name:   "too few days",
			days:   7,
			mutate: func(r *openmeteo.ForecastAPIResponse) {},
		},
		{
			name: "ragged weather codes",
			days: 5,
			mutate: func(r *openmeteo.ForecastAPIResponse) {
				r.Daily.WeatherCode = r.Daily.WeatherCode[:4]
			},
		},
		{
			name: "ragged sunset",
			days: 3,
			mutate: func(r *openmeteo.ForecastAPIResponse) {
				r.Daily.Sunset = r.Daily.Sunset[:1]
			},
		},
		{
			name: "invalid timezone",
			days: 5,
			mutate: func(r *openmeteo.ForecastAPIResponse) {
				r.Timezone = "Invalid/Timezone"
			},
		},
		{
			name: "unparseable date",
			days: 5,
			mutate: func(r *openmeteo.ForecastAPIResponse) {
				r.Daily.Time[2] = "Jan 8"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiResponse := loadForecastResponse(t)
			tt.mutate(apiResponse)

			_, err := mapForecastAPIResponseToForecast(apiResponse, tt.days, time.Now())
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
		})
	}

	if _, err := mapForecastAPIResponseToForecast(nil, 5, time.Now()); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("nil response error = %v, want ErrMalformedResponse", err)
	}
}

func TestWeatherService_GetForecast(t *testing.T) {
	tests := []struct {
		name        string
		response    *openmeteo.ForecastAPIResponse
		providerErr error
		wantErr     error
		errContains string
	}{
		{
			name:     "success",
			response: loadForecastResponse(t),
		},
		{
			name:        "provider error",
			providerErr: errors.New("connection refused"),
			errContains: "failed to get forecast",
		},
		{
			name:     "empty daily series",
			response: &openmeteo.ForecastAPIResponse{Timezone: "America/New_York"},
			wantErr:  ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockForecastProvider{response: tt.response, err: tt.providerErr}
			service := NewWeatherServiceWithProvider(provider, 5, testLogger())

			got, err := service.GetForecast(context.Background(), newYork)

			if provider.gotDays != 5 {
				t.Errorf("provider got forecastDays = %d, want 5", provider.gotDays)
			}
			if provider.gotTimezone != "America/New_York" {
				t.Errorf("provider got timezone = %q, want America/New_York", provider.gotTimezone)
			}
			if provider.gotLatitude != 40.71427 || provider.gotLongitude != -74.00597 {
				t.Errorf("provider got coordinates %v,%v", provider.gotLatitude, provider.gotLongitude)
			}

			if tt.wantErr != nil || tt.errContains != "" {
				if err == nil {
					t.Fatal("GetForecast() expected error but got none")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("GetForecast() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("GetForecast() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("GetForecast() unexpected error = %v", err)
			}
			if len(got.Daily) != 5 {
				t.Errorf("Daily has %d days, want 5", len(got.Daily))
			}
		})
	}
}
