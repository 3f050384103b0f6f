package helper

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"refuge-connect/internal/catalog"
	"refuge-connect/internal/types"
)

type fixtureRepository []types.Helper

func (f fixtureRepository) Helpers() []types.Helper {
	return append([]types.Helper(nil), f...)
}

func TestDirectory_All(t *testing.T) {
	tests := []struct {
		name string
		repo Repository
		want []types.Helper
	}{
		{
			name: "seeded helpers in seed order",
			repo: catalog.Default(),
			want: []types.Helper{
				{ID: 1, Name: "Maria Schmidt", Language: "German", Expertise: "Legal Advice"},
				{ID: 2, Name: "Jean Dupont", Language: "French", Expertise: "Housing Assistance"},
				{ID: 3, Name: "Anna Kowalski", Language: "Polish", Expertise: "Job Search"},
				{ID: 4, Name: "Carlos Fernandez", Language: "Spanish", Expertise: "Education"},
			},
		},
		{
			name: "fixture catalog",
			repo: fixtureRepository{{ID: 7, Name: "Olena Kovalenko", Language: "Ukrainian", Expertise: "Healthcare"}},
			want: []types.Helper{{ID: 7, Name: "Olena Kovalenko", Language: "Ukrainian", Expertise: "Healthcare"}},
		},
		{
			name: "empty catalog",
			repo: fixtureRepository{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDirectory(tt.repo).All()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("All() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
