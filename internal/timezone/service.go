package timezone

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"refuge-connect/internal/types"
)

// ErrNotFound is returned when no timezone covers the given coordinates
var ErrNotFound = errors.New("timezone not found")

// Service resolves IANA timezone names for coordinates
type Service interface {
	Lookup(coords types.Coords) (string, error)
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide timezone service.
// tzf keeps its polygon data in memory, so the finder is built only once.
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

// Lookup returns names like "Europe/Berlin" for the given point
func (s *service) Lookup(coords types.Coords) (string, error) {
	// tzf takes longitude first
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("lat=%f, lon=%f: %w", coords.Latitude, coords.Longitude, ErrNotFound)
	}
	return name, nil
}
