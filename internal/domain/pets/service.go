package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrNotFound = fmt.Errorf("pet %w", apperr.ErrNotFound)
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Species      string
	Breed        string
	Age          string
	Weight       string
	Gender       string
	Description  string
	HealthStatus []string
	ImageURL     *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	p := Pet{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Species:      Species(strings.TrimSpace(in.Species)),
		Breed:        strings.TrimSpace(in.Breed),
		Age:          strings.TrimSpace(in.Age),
		Weight:       strings.TrimSpace(in.Weight),
		Gender:       Gender(strings.TrimSpace(in.Gender)),
		Description:  strings.TrimSpace(in.Description),
		HealthStatus: normalizeTags(in.HealthStatus),
		ImageURL:     normalizeOptional(in.ImageURL),
		IsAdopted:    false,
		CreatedAt:    s.now(),
	}

	if err := validate(p); err != nil {
		return Pet{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// OptionalString distingue "campo no enviado" de "enviado null" en un PATCH.
type OptionalString struct {
	Present bool
	Value   *string
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
// IsAdopted no es editable: solo cambia vía adopción.
type UpdateInput struct {
	Name         *string
	Species      *string
	Breed        *string
	Age          *string
	Weight       *string
	Gender       *string
	Description  *string
	HealthStatus *[]string
	ImageURL     OptionalString
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		p.Species = Species(strings.TrimSpace(*in.Species))
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		p.Age = strings.TrimSpace(*in.Age)
	}
	if in.Weight != nil {
		p.Weight = strings.TrimSpace(*in.Weight)
	}
	if in.Gender != nil {
		p.Gender = Gender(strings.TrimSpace(*in.Gender))
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.HealthStatus != nil {
		p.HealthStatus = normalizeTags(*in.HealthStatus)
	}
	if in.ImageURL.Present {
		p.ImageURL = normalizeOptional(in.ImageURL.Value)
	}

	if err := validate(p); err != nil {
		return Pet{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, mapNotFound(err)
	}
	return p, nil
}

// ListAvailable es el catálogo público (solo no adoptadas).
func (s *Service) ListAvailable(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, ListFilter{AvailableOnly: true})
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, ListFilter{})
}

// Delete no revisa solicitudes en curso: las applications/adoptions quedan con petId colgado.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return mapNotFound(s.repo.Delete(ctx, id))
}

func validate(p Pet) error {
	v := apperr.NewValidationError()

	required := map[string]string{
		"name":        p.Name,
		"breed":       p.Breed,
		"age":         p.Age,
		"weight":      p.Weight,
		"description": p.Description,
	}
	for field, val := range required {
		if val == "" {
			v.Add(field, "required")
		}
	}
	if !p.Species.Valid() {
		v.Add("species", "must be one of dog, cat, rabbit, other")
	}
	if !p.Gender.Valid() {
		v.Add("gender", "must be one of male, female")
	}
	return v.OrNil()
}

func normalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, raw := range in {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func mapNotFound(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
