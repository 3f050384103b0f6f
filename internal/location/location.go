package location

import (
	"log/slog"

	"refuge-connect/internal/types"
)

// Service lists safe locations for refugees
type Service interface {
	// List returns the locations whose name matches filter, in catalog order.
	// An empty filter returns the whole catalog.
	List(filter string) []types.Location
}

// Repository supplies the read-only location catalog
type Repository interface {
	Locations() []types.Location
}

// TimezoneProvider resolves the local timezone of a location
type TimezoneProvider interface {
	Lookup(coords types.Coords) (string, error)
}

// locationService implements the Service interface
type locationService struct {
	locations []types.Location
	logger    *slog.Logger
}

// NewLocationService snapshots the repository catalog and resolves each
// location's timezone once. A failed lookup leaves Timezone empty.
func NewLocationService(repo Repository, tz TimezoneProvider, logger *slog.Logger) Service {
	logger = logger.With("component", "location-service")

	locations := repo.Locations()
	if tz != nil {
		for i := range locations {
			name, err := tz.Lookup(locations[i].Coordinates)
			if err != nil {
				logger.Warn("failed to resolve timezone",
					"location_id", locations[i].ID,
					"name", locations[i].Name,
					"error", err,
				)
				continue
			}
			locations[i].Timezone = name
		}
	}

	logger.Debug("location catalog loaded", "count", len(locations))

	return &locationService{
		locations: locations,
		logger:    logger,
	}
}

// List derives the visible subset from the full catalog on every call
func (s *locationService) List(filter string) []types.Location {
	return Filter(s.locations, filter)
}
