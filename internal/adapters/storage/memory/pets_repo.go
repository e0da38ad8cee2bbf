package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-adoption/internal/domain/pets"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.s.pets[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.s.pets[p.ID] = clonePet(p)
	return nil
}

// Update no toca IsAdopted: ese flag solo lo cambia Adopt.
func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	cur, exists := r.s.pets[p.ID]
	if !exists {
		return pets.ErrNotFound
	}
	p.IsAdopted = cur.IsAdopted
	p.CreatedAt = cur.CreatedAt
	r.s.pets[p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.s.pets))
	for _, p := range r.s.pets {
		if filter.AvailableOnly && p.IsAdopted {
			continue
		}
		out = append(out, clonePet(p))
	}

	// Orden estable por created_at asc
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Delete no borra solicitudes ni adopciones de la mascota.
func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.s.pets, id)
	return nil
}

// clonePet evita que el caller y el store compartan el slice de tags.
func clonePet(p pets.Pet) pets.Pet {
	if p.HealthStatus != nil {
		p.HealthStatus = append([]string(nil), p.HealthStatus...)
	}
	return p
}
