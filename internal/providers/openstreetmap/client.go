package openstreetmap

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"weather-dash/internal/providers/transport"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=39.11&lon=-107.65&format=json
const (
	baseURL = "https://nominatim.openstreetmap.org/reverse"
)

type Client struct {
	transport *transport.Client
	baseURL   string
	logger    *slog.Logger
}

func NewClient(opts transport.Options, logger *slog.Logger) *Client {
	return &Client{
		transport: transport.New("openstreetmap", opts, logger),
		baseURL:   baseURL,
		logger:    logger.With("component", "openstreetmap-client"),
	}
}

// Lookup reverse geocodes a coordinate pair
func (c *Client) Lookup(ctx context.Context, latitude, longitude float64, language string) (*LookupAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	q.Set("zoom", "10") // city level
	if language != "" {
		q.Set("accept-language", language)
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
	)

	var apiResp LookupAPIResponse
	if err := c.transport.GetJSON(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Error != "" {
		return nil, fmt.Errorf("lookup failed: %s", apiResp.Error)
	}

	return &apiResp, nil
}
