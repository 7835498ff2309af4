package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"weather-dash/internal/config"
	"weather-dash/internal/providers/openmeteo"
	"weather-dash/internal/providers/transport"
	"weather-dash/internal/timezone"
	"weather-dash/internal/types"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

// ErrMalformedResponse is returned when the provider response cannot be mapped
var ErrMalformedResponse = errors.New("malformed forecast response")

type ForecastProvider interface {
	// GetForecast fetches current conditions and the daily series for the given coordinates
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetForecast(ctx context.Context, point types.ForecastPoint) (*Forecast, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	forecastDays     int
	logger           *slog.Logger
	now              func() time.Time
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	opts := transport.Options{
		Timeout:     cfg.HTTP.Timeout,
		MaxFailures: cfg.Breaker.MaxFailures,
		OpenTimeout: cfg.Breaker.Timeout,
	}
	return NewWeatherServiceWithProvider(openmeteo.NewForecastClient(opts, logger), cfg.App.ForecastDays, logger)
}

func NewWeatherServiceWithProvider(forecastProvider ForecastProvider, forecastDays int, logger *slog.Logger) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		forecastDays:     forecastDays,
		logger:           logger.With("component", "weather-service"),
		now:              time.Now,
	}
}

func (s *weatherService) GetForecast(ctx context.Context, point types.ForecastPoint) (*Forecast, error) {
	apiResponse, err := s.forecastProvider.GetForecast(
		ctx,
		point.Coordinates.Latitude,
		point.Coordinates.Longitude,
		s.forecastDays,
		point.Timezone,
	)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	forecast, err := mapForecastAPIResponseToForecast(apiResponse, s.forecastDays, s.now())
	if err != nil {
		s.logger.Error("failed to map forecast response",
			"latitude", point.Coordinates.Latitude,
			"longitude", point.Coordinates.Longitude,
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug("mapped forecast",
		"timezone", forecast.Timezone,
		"weather_code", forecast.Current.Weather.Code,
		"days", len(forecast.Daily),
	)

	return forecast, nil
}

func mapForecastAPIResponseToForecast(apiResponse *openmeteo.ForecastAPIResponse, forecastDays int, now time.Time) (*Forecast, error) {
	if apiResponse == nil {
		return nil, fmt.Errorf("%w: response is nil", ErrMalformedResponse)
	}

	location, err := timezone.LoadLocation(apiResponse.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	daily := apiResponse.Daily
	days := len(daily.Time)
	if days < forecastDays {
		return nil, fmt.Errorf("%w: got %d daily entries, want %d", ErrMalformedResponse, days, forecastDays)
	}
	if len(daily.WeatherCode) != days || len(daily.Temperature2MMax) != days || len(daily.Temperature2MMin) != days ||
		len(daily.Sunrise) != days || len(daily.Sunset) != days {
		return nil, fmt.Errorf("%w: daily series have different lengths", ErrMalformedResponse)
	}

	current := apiResponse.Current
	forecast := &Forecast{
		Timestamp: now.In(location),
		Timezone:  apiResponse.Timezone,
		Current: CurrentConditions{
			Time:                toTime(current.Time, location),
			Weather:             types.NewWeather(current.WeatherCode),
			Temperature:         types.NewTemperatureFromCelsius(current.Temperature2M),
			ApparentTemperature: types.NewTemperatureFromCelsius(current.ApparentTemperature),
			RelativeHumidity:    current.RelativeHumidity2M,
			SurfacePressure:     current.SurfacePressure,
			Wind:                types.NewWindFromKph(current.WindSpeed10M, current.WindDirection10M),
			CloudCover:          current.CloudCover,
			Visibility:          current.Visibility,
		},
		Daily: make([]DailyForecast, 0, forecastDays),
	}

	for i := 0; i < forecastDays; i++ {
		date, err := time.ParseInLocation(dateLayout, daily.Time[i], location)
		if err != nil {
			return nil, fmt.Errorf("%w: daily time %q: %v", ErrMalformedResponse, daily.Time[i], err)
		}

		forecast.Daily = append(forecast.Daily, DailyForecast{
			Date:            date,
			Weather:         toWeather(daily.WeatherCode[i]),
			HighTemperature: toTemperature(daily.Temperature2MMax[i]),
			LowTemperature:  toTemperature(daily.Temperature2MMin[i]),
			Sunrise:         toTime(daily.Sunrise[i], location),
			Sunset:          toTime(daily.Sunset[i], location),
		})
	}

	return forecast, nil
}

// toTime parses an Open-Meteo local timestamp, returning the zero time when it
// does not parse
func toTime(s string, location *time.Location) time.Time {
	t, err := time.ParseInLocation(dateTimeLayout, s, location)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toWeather(code *int) *types.Weather {
	if code == nil {
		return nil
	}
	w := types.NewWeather(*code)
	return &w
}

func toTemperature(celsius *float64) *types.Temperature {
	if celsius == nil {
		return nil
	}
	t := types.NewTemperatureFromCelsius(*celsius)
	return &t
}
