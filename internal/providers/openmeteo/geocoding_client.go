package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"weather-dash/internal/providers/transport"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=New+York&count=1&language=en&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	transport *transport.Client
	baseURL   string
	logger    *slog.Logger
}

func NewGeocodingClient(opts transport.Options, logger *slog.Logger) *GeocodingClient {
	return &GeocodingClient{
		transport: transport.New("openmeteo-geocoding", opts, logger),
		baseURL:   baseGeocodingURL,
		logger:    logger.With("component", "openmeteo-geocoding-client"),
	}
}

// Search looks up places by name. An empty Results slice is not an error.
func (c *GeocodingClient) Search(ctx context.Context, name string, count int, language string) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", language)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("searching for place", "name", name, "language", language)

	var apiResp GeocodingAPIResponse
	if err := c.transport.GetJSON(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
