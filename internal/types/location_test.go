package types

import "testing"

func TestParseHealthcareAccess(t *testing.T) {
	tests := []struct {
		input    string
		expected HealthcareAccess
	}{
		{"Excellent", HealthcareExcellent},
		{"excellent", HealthcareExcellent},
		{"Good", HealthcareGood},
		{" moderate ", HealthcareModerate},
		{"LOW", HealthcareLow},
		{"", HealthcareUnknown},
		{"superb", HealthcareUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseHealthcareAccess(tt.input)
			if result != tt.expected {
				t.Errorf("ParseHealthcareAccess(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestHealthcareAccess_String(t *testing.T) {
	tests := []struct {
		level    HealthcareAccess
		expected string
	}{
		{HealthcareLow, "Low"},
		{HealthcareModerate, "Moderate"},
		{HealthcareGood, "Good"},
		{HealthcareExcellent, "Excellent"},
		{HealthcareAccess(42), "Unknown (42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.level.String()
			if result != tt.expected {
				t.Errorf("HealthcareAccess(%d).String() = %q, want %q", tt.level, result, tt.expected)
			}
		})
	}
}

func TestParseJobOpportunities(t *testing.T) {
	tests := []struct {
		input    string
		expected JobOpportunities
	}{
		{"High", JobsHigh},
		{"medium", JobsMedium},
		{"Low", JobsLow},
		{"", JobsUnknown},
		{"plenty", JobsUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseJobOpportunities(tt.input)
			if result != tt.expected {
				t.Errorf("ParseJobOpportunities(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestJobOpportunities_MarshalText(t *testing.T) {
	got, err := JobsMedium.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(got) != "Medium" {
		t.Errorf("MarshalText() = %q, want %q", got, "Medium")
	}
}

func TestLocation_Clone(t *testing.T) {
	orig := Location{ID: 1, Name: "Berlin, Germany", Languages: []string{"German", "English"}}

	clone := orig.Clone()
	clone.Languages[0] = "Changed"

	if orig.Languages[0] != "German" {
		t.Errorf("Clone() shares Languages with original: got %q", orig.Languages[0])
	}
}
