package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"weather-dash/internal/providers/transport"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=40.71&longitude=-74.01&current=temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,surface_pressure,wind_speed_10m,wind_direction_10m,cloud_cover,visibility&daily=weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset&timezone=auto&forecast_days=5
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
	autoTimezone    = "auto"
)

var (
	currentVars = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"weather_code",
		"surface_pressure",
		"wind_speed_10m",
		"wind_direction_10m",
		"cloud_cover",
		"visibility",
	}

	dailyVars = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"sunrise",
		"sunset",
	}
)

type ForecastClient struct {
	transport *transport.Client
	baseURL   string
	logger    *slog.Logger
}

func NewForecastClient(opts transport.Options, logger *slog.Logger) *ForecastClient {
	return &ForecastClient{
		transport: transport.New("openmeteo-forecast", opts, logger),
		baseURL:   baseForecastURL,
		logger:    logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetForecast fetches current conditions and a daily series. Temperatures are
// Celsius, wind km/h, pressure hPa. An empty timezone lets Open-Meteo pick one.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	if timezone == "" {
		timezone = autoTimezone
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timeformat", "iso8601")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching forecast",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", timezone,
		"forecast_days", forecastDays,
	)

	var apiResp ForecastAPIResponse
	if err := c.transport.GetJSON(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
