package types

import (
	"fmt"
	"strings"
)

// Location is a city listed in the safe locations catalog
type Location struct {
	ID               int
	Name             string // "City, Country"
	Distance         int    // km, static mock value
	IsWelcoming      bool
	Image            string
	Languages        []string
	HealthcareAccess HealthcareAccess
	JobOpportunities JobOpportunities
	Coordinates      Coords
	Timezone         string // IANA name, resolved at catalog load
}

// Clone returns a copy that shares no slices with l.
func (l Location) Clone() Location {
	l.Languages = append([]string(nil), l.Languages...)
	return l
}

// HealthcareAccess rates access to healthcare at a location.
type HealthcareAccess int

const (
	HealthcareUnknown   HealthcareAccess = 0
	HealthcareLow       HealthcareAccess = 1
	HealthcareModerate  HealthcareAccess = 2
	HealthcareGood      HealthcareAccess = 3
	HealthcareExcellent HealthcareAccess = 4
)

var healthcareAccessNames = map[HealthcareAccess]string{
	HealthcareLow:       "Low",
	HealthcareModerate:  "Moderate",
	HealthcareGood:      "Good",
	HealthcareExcellent: "Excellent",
}

func (h HealthcareAccess) String() string {
	if name, ok := healthcareAccessNames[h]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", int(h))
}

// MarshalText renders the rating by name in JSON responses
func (h HealthcareAccess) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// ParseHealthcareAccess converts a rating name to HealthcareAccess.
// Returns HealthcareUnknown for unrecognised input.
func ParseHealthcareAccess(s string) HealthcareAccess {
	for level, name := range healthcareAccessNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return level
		}
	}
	return HealthcareUnknown
}

// JobOpportunities rates the local job market.
type JobOpportunities int

const (
	JobsUnknown JobOpportunities = 0
	JobsLow     JobOpportunities = 1
	JobsMedium  JobOpportunities = 2
	JobsHigh    JobOpportunities = 3
)

var jobOpportunitiesNames = map[JobOpportunities]string{
	JobsLow:    "Low",
	JobsMedium: "Medium",
	JobsHigh:   "High",
}

func (j JobOpportunities) String() string {
	if name, ok := jobOpportunitiesNames[j]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", int(j))
}

// MarshalText renders the rating by name in JSON responses
func (j JobOpportunities) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// ParseJobOpportunities converts a rating name to JobOpportunities.
// Returns JobsUnknown for unrecognised input.
func ParseJobOpportunities(s string) JobOpportunities {
	for level, name := range jobOpportunitiesNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return level
		}
	}
	return JobsUnknown
}
