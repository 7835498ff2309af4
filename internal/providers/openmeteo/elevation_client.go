package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"weather-dash/internal/providers/transport"
)

// API Docs: https://open-meteo.com/en/docs/elevation-api
// Sample request: https://api.open-meteo.com/v1/elevation?latitude=39.1178&longitude=-106.4452
const (
	baseElevationURL = "https://api.open-meteo.com/v1/elevation"
)

type ElevationClient struct {
	transport *transport.Client
	baseURL   string
}

func NewElevationClient(opts transport.Options, logger *slog.Logger) *ElevationClient {
	return &ElevationClient{
		transport: transport.New("openmeteo-elevation", opts, logger),
		baseURL:   baseElevationURL,
	}
}

func (c *ElevationClient) GetElevation(ctx context.Context, latitude, longitude float64) (*ElevationAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	u.RawQuery = q.Encode()

	var apiResp ElevationAPIResponse
	if err := c.transport.GetJSON(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
