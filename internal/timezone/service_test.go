package timezone

import (
	"testing"

	"refuge-connect/internal/types"
)

func TestService_Lookup(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name   string
		coords types.Coords
		want   string
	}{
		{
			name:   "Berlin, Germany",
			coords: types.NewCoords(52.5200, 13.4050),
			want:   "Europe/Berlin",
		},
		{
			name:   "Paris, France",
			coords: types.NewCoords(48.8566, 2.3522),
			want:   "Europe/Paris",
		},
		{
			name:   "Warsaw, Poland",
			coords: types.NewCoords(52.2297, 21.0122),
			want:   "Europe/Warsaw",
		},
		{
			name:   "Budapest, Hungary",
			coords: types.NewCoords(47.4979, 19.0402),
			want:   "Europe/Budapest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Lookup(tt.coords)
			if err != nil {
				t.Errorf("Lookup() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewService_ReturnsSingleton(t *testing.T) {
	a, err := NewService()
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	b, err := NewService()
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if a != b {
		t.Error("NewService() returned different instances")
	}
}
