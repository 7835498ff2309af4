//go:build integration

package openmeteo

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"weather-dash/internal/providers/transport"
)

func integrationLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestElevationClient_GetElevation_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area
	lat := 39.11539
	lon := -107.65840

	client := NewElevationClient(transport.DefaultOptions, integrationLogger())

	resp, err := client.GetElevation(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get elevation: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(resp.Elevation) == 0 {
		t.Fatal("Elevation array is empty")
	}

	// Sanity check - Aspen area should be between 2000-4000 meters
	if resp.Elevation[0] < 1000 || resp.Elevation[0] > 5000 {
		t.Errorf("Elevation seems unreasonable: %v meters", resp.Elevation[0])
	}
}

func TestGeocodingClient_Search_Integration(t *testing.T) {
	client := NewGeocodingClient(transport.DefaultOptions, integrationLogger())

	resp, err := client.Search(context.Background(), "New York", 1, "en")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("Results = %d, want 1", len(resp.Results))
	}

	r := resp.Results[0]
	t.Logf("Found %s, %s (%f, %f) tz=%s", r.Name, r.Country, r.Latitude, r.Longitude, r.Timezone)

	if r.CountryCode != "US" {
		t.Errorf("CountryCode = %q, want US", r.CountryCode)
	}

	resp, err = client.Search(context.Background(), "Qqqzzxxyyq", 1, "en")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("Results = %d for nonsense query, want 0", len(resp.Results))
	}
}

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	client := NewForecastClient(transport.DefaultOptions, integrationLogger())

	resp, err := client.GetForecast(context.Background(), 40.71427, -74.00597, 5, "America/New_York")
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	t.Logf("Timezone: %s, current temperature: %.1f%s, code %d",
		resp.Timezone, resp.Current.Temperature2M, resp.CurrentUnits.Temperature2M, resp.Current.WeatherCode)

	if resp.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", resp.Timezone)
	}
	if len(resp.Daily.Time) != 5 {
		t.Errorf("Daily.Time = %d entries, want 5", len(resp.Daily.Time))
	}
	if len(resp.Daily.Sunrise) != len(resp.Daily.Time) {
		t.Errorf("Daily.Sunrise = %d entries, want %d", len(resp.Daily.Sunrise), len(resp.Daily.Time))
	}
}
