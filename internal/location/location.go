package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"weather-dash/internal/config"
	"weather-dash/internal/providers/openmeteo"
	"weather-dash/internal/providers/openstreetmap"
	"weather-dash/internal/providers/transport"
	"weather-dash/internal/timezone"
	"weather-dash/internal/types"
)

var (
	ErrEmptyQuery       = errors.New("city name is empty")
	ErrNotFound         = errors.New("city not found")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Service resolves user input into a ForecastPoint
type Service interface {
	// Search geocodes a free-text city name and returns the best match
	Search(ctx context.Context, city string) (*types.ForecastPoint, error)
	// GetForecastPoint names and describes a coordinate pair
	GetForecastPoint(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error)
}

// Geocoder searches places by name
type Geocoder interface {
	Search(ctx context.Context, name string, count int, language string) (*openmeteo.GeocodingAPIResponse, error)
}

// ElevationProvider defines the interface for elevation data providers
type ElevationProvider interface {
	GetElevation(ctx context.Context, latitude, longitude float64) (*openmeteo.ElevationAPIResponse, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64, language string) (*openstreetmap.LookupAPIResponse, error)
}

type locationService struct {
	geocoder          Geocoder
	elevationProvider ElevationProvider
	locationProvider  ReverseGeocodeProvider
	timezoneService   timezone.Service
	language          string
	logger            *slog.Logger
}

// NewLocationService creates a new location service with real provider clients
func NewLocationService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	opts := transport.Options{
		Timeout:     cfg.HTTP.Timeout,
		MaxFailures: cfg.Breaker.MaxFailures,
		OpenTimeout: cfg.Breaker.Timeout,
	}

	return NewLocationServiceWithProviders(
		openmeteo.NewGeocodingClient(opts, logger),
		openmeteo.NewElevationClient(opts, logger),
		openstreetmap.NewClient(opts, logger),
		tzSvc,
		cfg.Geocoding.Language,
		logger,
	), nil
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	geocoder Geocoder,
	elevationProvider ElevationProvider,
	locationProvider ReverseGeocodeProvider,
	timezoneService timezone.Service,
	language string,
	logger *slog.Logger,
) Service {
	return &locationService{
		geocoder:          geocoder,
		elevationProvider: elevationProvider,
		locationProvider:  locationProvider,
		timezoneService:   timezoneService,
		language:          language,
		logger:            logger.With("component", "location-service"),
	}
}

func (s *locationService) Search(ctx context.Context, city string) (*types.ForecastPoint, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := s.geocoder.Search(ctx, city, 1, s.language)
	if err != nil {
		s.logger.Error("failed to geocode city", "city", city, "error", err)
		return nil, fmt.Errorf("failed to geocode city: %w", err)
	}

	if resp == nil || len(resp.Results) == 0 {
		s.logger.Debug("no geocoding results", "city", city)
		return nil, fmt.Errorf("%w: %q", ErrNotFound, city)
	}

	result := resp.Results[0]
	point := &types.ForecastPoint{
		Coordinates: types.NewCoords(result.Latitude, result.Longitude),
		Elevation:   types.NewElevationFromMeters(result.Elevation),
		Location: types.LocationInfo{
			Name:        result.Name,
			Region:      result.Admin1,
			Country:     result.Country,
			CountryCode: strings.ToUpper(result.CountryCode),
		},
		Timezone: result.Timezone,
	}

	if point.Timezone == "" {
		point.Timezone = s.lookupTimezone(point.Coordinates)
	}

	s.logger.Debug("resolved city",
		"city", city,
		"name", point.Location.Name,
		"country", point.Location.Country,
		"latitude", point.Coordinates.Latitude,
		"longitude", point.Coordinates.Longitude,
		"timezone", point.Timezone,
	)

	return point, nil
}

// GetForecastPoint retrieves location data by calling providers in parallel
func (s *locationService) GetForecastPoint(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error) {
	if latitude < -90 || latitude > 90 {
		return nil, ErrInvalidLatitude
	}
	if longitude < -180 || longitude > 180 {
		return nil, ErrInvalidLongitude
	}

	var (
		wg            sync.WaitGroup
		elevationResp *openmeteo.ElevationAPIResponse
		locationResp  *openstreetmap.LookupAPIResponse
		elevationErr  error
		locationErr   error
	)

	// Launch both API calls in parallel
	wg.Add(2)

	go func() {
		defer wg.Done()
		elevationResp, elevationErr = s.elevationProvider.GetElevation(ctx, latitude, longitude)
		if elevationErr != nil {
			elevationErr = fmt.Errorf("failed to get elevation: %w", elevationErr)
		}
	}()

	go func() {
		defer wg.Done()
		locationResp, locationErr = s.locationProvider.Lookup(ctx, latitude, longitude, s.language)
		if locationErr != nil {
			locationErr = fmt.Errorf("failed to get location: %w", locationErr)
		}
	}()

	wg.Wait()

	if locationErr != nil {
		s.logger.Error("failed to describe coordinates",
			"latitude", latitude,
			"longitude", longitude,
			"error", locationErr,
		)
		return nil, locationErr
	}

	locationInfo, err := translateLocationInfo(locationResp)
	if err != nil {
		return nil, err
	}

	// Elevation is supplementary; a missing value leaves it zero
	var elevation types.Elevation
	if elevationErr == nil {
		elevation, elevationErr = translateElevation(elevationResp)
	}
	if elevationErr != nil {
		s.logger.Warn("continuing without elevation",
			"latitude", latitude,
			"longitude", longitude,
			"error", elevationErr,
		)
	}

	coords := types.NewCoords(latitude, longitude)

	return &types.ForecastPoint{
		Coordinates: coords,
		Elevation:   elevation,
		Location:    locationInfo,
		Timezone:    s.lookupTimezone(coords),
	}, nil
}

// lookupTimezone returns "" when the finder has no answer, leaving the choice
// to the forecast provider
func (s *locationService) lookupTimezone(coords types.Coords) string {
	if s.timezoneService == nil {
		return ""
	}
	tz, err := s.timezoneService.GetTimezone(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("failed to determine timezone",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return ""
	}
	return tz
}

// translateElevation converts an OpenMeteo elevation response to domain Elevation type
func translateElevation(resp *openmeteo.ElevationAPIResponse) (types.Elevation, error) {
	if resp == nil {
		return types.Elevation{}, fmt.Errorf("elevation response is nil")
	}
	if len(resp.Elevation) == 0 {
		return types.Elevation{}, fmt.Errorf("elevation response contains no data")
	}

	return types.NewElevationFromMeters(resp.Elevation[0]), nil
}

// translateLocationInfo converts an OpenStreetMap reverse lookup response to domain LocationInfo type
func translateLocationInfo(resp *openstreetmap.LookupAPIResponse) (types.LocationInfo, error) {
	if resp == nil {
		return types.LocationInfo{}, fmt.Errorf("lookup response is nil")
	}

	name := resp.Address.Locality()
	if name == "" {
		name = resp.Name
	}
	if name == "" {
		name = resp.DisplayName
	}

	return types.LocationInfo{
		Name:        name,
		Region:      resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: strings.ToUpper(resp.Address.CountryCode),
	}, nil
}
