package pets

import (
	"context"
	"fmt"
)

func strPtr(s string) *string { return &s }

// SamplePets es el catálogo de demo que se carga con SEED_SAMPLE_DATA=true.
var SamplePets = []CreateInput{
	{
		Name:         "Bar",
		Species:      string(SpeciesDog),
		Breed:        "Golden Retriever",
		Age:          "2 years",
		Weight:       "25 kg",
		Gender:       string(GenderMale),
		Description:  "Friendly and great with kids. Loves to play and follows commands well.",
		HealthStatus: []string{"healthy", "vaccinated", "neutered"},
		ImageURL:     strPtr("https://images.unsplash.com/photo-1552053831-71594a27632d?w=400&h=300&fit=crop&crop=center"),
	},
	{
		Name:         "Luna",
		Species:      string(SpeciesCat),
		Breed:        "Persian",
		Age:          "1 year",
		Weight:       "4 kg",
		Gender:       string(GenderFemale),
		Description:  "Calm indoor cat that gets attached to people quickly.",
		HealthStatus: []string{"healthy", "vaccinated"},
		ImageURL:     strPtr("https://images.unsplash.com/photo-1596854407944-bf87f6fdd49e?w=400&h=300&fit=crop&crop=center"),
	},
	{
		Name:         "Chink",
		Species:      string(SpeciesRabbit),
		Breed:        "Holland Lop",
		Age:          "8 months",
		Weight:       "1.5 kg",
		Gender:       string(GenderMale),
		Description:  "Small and playful rabbit. Gets along with children.",
		HealthStatus: []string{"healthy", "vaccinated"},
		ImageURL:     strPtr("https://images.unsplash.com/photo-1585110396000-c9ffd4e4b308?w=400&h=300&fit=crop&crop=center"),
	},
}

// Seed carga samples solo si el catálogo está vacío, así reiniciar contra
// Postgres no duplica mascotas. Devuelve cuántas creó.
func (s *Service) Seed(ctx context.Context, samples []CreateInput) (int, error) {
	existing, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, in := range samples {
		if _, err := s.Create(ctx, in); err != nil {
			return i, fmt.Errorf("seed pet %q: %w", in.Name, err)
		}
	}
	return len(samples), nil
}
