package catalog

import "refuge-connect/internal/types"

const placeholderImage = "/static/placeholder.svg?height=200&width=300"

func seedLocations() []types.Location {
	return []types.Location{
		{
			ID:               1,
			Name:             "Berlin, Germany",
			Distance:         0,
			IsWelcoming:      true,
			Image:            placeholderImage,
			Languages:        []string{"German", "English"},
			HealthcareAccess: types.HealthcareExcellent,
			JobOpportunities: types.JobsHigh,
			Coordinates:      types.NewCoords(52.5200, 13.4050),
		},
		{
			ID:               2,
			Name:             "Paris, France",
			Distance:         878,
			IsWelcoming:      true,
			Image:            placeholderImage,
			Languages:        []string{"French", "English"},
			HealthcareAccess: types.HealthcareGood,
			JobOpportunities: types.JobsMedium,
			Coordinates:      types.NewCoords(48.8566, 2.3522),
		},
		{
			ID:               3,
			Name:             "Warsaw, Poland",
			Distance:         524,
			IsWelcoming:      false,
			Image:            placeholderImage,
			Languages:        []string{"Polish", "English"},
			HealthcareAccess: types.HealthcareModerate,
			JobOpportunities: types.JobsLow,
			Coordinates:      types.NewCoords(52.2297, 21.0122),
		},
		{
			ID:               4,
			Name:             "Vienna, Austria",
			Distance:         524,
			IsWelcoming:      true,
			Image:            placeholderImage,
			Languages:        []string{"German", "English"},
			HealthcareAccess: types.HealthcareExcellent,
			JobOpportunities: types.JobsMedium,
			Coordinates:      types.NewCoords(48.2082, 16.3738),
		},
		{
			ID:               5,
			Name:             "Prague, Czech Republic",
			Distance:         280,
			IsWelcoming:      true,
			Image:            placeholderImage,
			Languages:        []string{"Czech", "English"},
			HealthcareAccess: types.HealthcareGood,
			JobOpportunities: types.JobsMedium,
			Coordinates:      types.NewCoords(50.0755, 14.4378),
		},
		{
			ID:               6,
			Name:             "Budapest, Hungary",
			Distance:         689,
			IsWelcoming:      false,
			Image:            placeholderImage,
			Languages:        []string{"Hungarian", "English"},
			HealthcareAccess: types.HealthcareModerate,
			JobOpportunities: types.JobsLow,
			Coordinates:      types.NewCoords(47.4979, 19.0402),
		},
	}
}

func seedHelpers() []types.Helper {
	return []types.Helper{
		{ID: 1, Name: "Maria Schmidt", Language: "German", Expertise: "Legal Advice"},
		{ID: 2, Name: "Jean Dupont", Language: "French", Expertise: "Housing Assistance"},
		{ID: 3, Name: "Anna Kowalski", Language: "Polish", Expertise: "Job Search"},
		{ID: 4, Name: "Carlos Fernandez", Language: "Spanish", Expertise: "Education"},
	}
}
