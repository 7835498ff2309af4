package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service resolves IANA timezones for coordinates
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide timezone service. The finder holds the
// timezone polygons in memory, so it is built once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates, like
// "America/New_York" or "Europe/London"
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	// tzf takes longitude first
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}

// LoadLocation loads a named zone, treating "" as UTC
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone location %s: %w", name, err)
	}
	return loc, nil
}
