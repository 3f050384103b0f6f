package catalog

import (
	"errors"
	"fmt"

	"refuge-connect/internal/types"
)

// ErrDuplicateID is returned when two records in one catalog share an ID
var ErrDuplicateID = errors.New("duplicate id")

// Catalog holds the immutable location and helper records.
// Accessors hand out copies, so callers can never mutate the source data.
type Catalog struct {
	locations []types.Location
	helpers   []types.Helper
}

// New validates and copies the given records into a Catalog
func New(locations []types.Location, helpers []types.Helper) (*Catalog, error) {
	seen := make(map[int]struct{}, len(locations))
	for _, l := range locations {
		if _, ok := seen[l.ID]; ok {
			return nil, fmt.Errorf("location %d (%s): %w", l.ID, l.Name, ErrDuplicateID)
		}
		seen[l.ID] = struct{}{}
	}

	seen = make(map[int]struct{}, len(helpers))
	for _, h := range helpers {
		if _, ok := seen[h.ID]; ok {
			return nil, fmt.Errorf("helper %d (%s): %w", h.ID, h.Name, ErrDuplicateID)
		}
		seen[h.ID] = struct{}{}
	}

	return &Catalog{
		locations: cloneLocations(locations),
		helpers:   append([]types.Helper(nil), helpers...),
	}, nil
}

// Default returns the catalog seeded with the built-in records
func Default() *Catalog {
	c, err := New(seedLocations(), seedHelpers())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}
	return c
}

// Locations returns every location in catalog order
func (c *Catalog) Locations() []types.Location {
	return cloneLocations(c.locations)
}

// Helpers returns every helper in catalog order
func (c *Catalog) Helpers() []types.Helper {
	return append([]types.Helper(nil), c.helpers...)
}

func cloneLocations(in []types.Location) []types.Location {
	out := make([]types.Location, len(in))
	for i, l := range in {
		out[i] = l.Clone()
	}
	return out
}
