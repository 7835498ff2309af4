package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"weather-dash/internal/location"
	"weather-dash/internal/types"
	"weather-dash/internal/weather"
)

type Service interface {
	// ByCity geocodes city and renders its forecast. An empty unit means the
	// stored preference.
	ByCity(ctx context.Context, city string, unit types.Unit) (*View, error)
	ByCoordinates(ctx context.Context, latitude, longitude float64, unit types.Unit) (*View, error)
	Preference() *UnitPreference
	About() string
}

type dashboardService struct {
	locationService location.Service
	weatherService  weather.Service
	preference      *UnitPreference
	about           string
	logger          *slog.Logger
	now             func() time.Time
}

func NewDashboardService(
	locationService location.Service,
	weatherService weather.Service,
	preference *UnitPreference,
	about string,
	logger *slog.Logger,
) Service {
	return &dashboardService{
		locationService: locationService,
		weatherService:  weatherService,
		preference:      preference,
		about:           about,
		logger:          logger.With("component", "dashboard-service"),
		now:             time.Now,
	}
}

func (s *dashboardService) ByCity(ctx context.Context, city string, unit types.Unit) (*View, error) {
	point, err := s.locationService.Search(ctx, city)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, point, unit)
}

func (s *dashboardService) ByCoordinates(ctx context.Context, latitude, longitude float64, unit types.Unit) (*View, error) {
	point, err := s.locationService.GetForecastPoint(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, point, unit)
}

func (s *dashboardService) render(ctx context.Context, point *types.ForecastPoint, unit types.Unit) (*View, error) {
	forecast, err := s.weatherService.GetForecast(ctx, *point)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast for %s: %w", point.Location.Name, err)
	}

	if unit == "" {
		unit = s.preference.Get()
	}

	view := Render(*point, *forecast, unit, s.now())
	s.logger.Debug("rendered dashboard", "city", view.Location.City, "unit", unit)
	return &view, nil
}

func (s *dashboardService) Preference() *UnitPreference {
	return s.preference
}

func (s *dashboardService) About() string {
	return s.about
}

// IsNotFound reports whether err means the requested place does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, location.ErrNotFound)
}

// IsBadInput reports whether err was caused by the caller's input
func IsBadInput(err error) bool {
	return errors.Is(err, location.ErrEmptyQuery) ||
		errors.Is(err, location.ErrInvalidLatitude) ||
		errors.Is(err, location.ErrInvalidLongitude)
}
