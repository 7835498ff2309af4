//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"weather-dash/internal/providers/transport"
)

func TestClient_Lookup_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area
	lat := 39.11539
	lon := -107.65840

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := NewClient(transport.DefaultOptions, logger)

	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Lookup(context.Background(), lat, lon, "en")
	if err != nil {
		t.Fatalf("Failed to get location data: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.PlaceId == 0 {
		t.Error("PlaceId is 0")
	}
	if resp.DisplayName == "" {
		t.Error("DisplayName is empty")
	}
	if resp.Address.Country == "" {
		t.Error("Address.Country is empty")
	}
	t.Logf("Locality: %s", resp.Address.Locality())
}
