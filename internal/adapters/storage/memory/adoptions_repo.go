package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
)

type adoptionRepo struct {
	s *Store
}

// Adopt corre entero con el lock de escritura tomado: se chequea y se escribe
// sin que otra request pueda intercalarse. Si algo falla no se escribe nada.
func (r *adoptionRepo) Adopt(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return adoptions.Adoption{}, errors.New("adoption id required")
	}
	if _, exists := r.s.adoptions[a.ID]; exists {
		return adoptions.Adoption{}, errors.New("adoption already exists")
	}

	p, ok := r.s.pets[a.PetID]
	if !ok {
		return adoptions.Adoption{}, pets.ErrNotFound
	}
	app, ok := r.s.apps[a.ApplicationID]
	if !ok {
		return adoptions.Adoption{}, applications.ErrNotFound
	}

	switch {
	case app.PetID != a.PetID:
		return adoptions.Adoption{}, adoptions.ErrApplicationMismatch
	case p.IsAdopted:
		return adoptions.Adoption{}, adoptions.ErrPetAlreadyAdopted
	case app.Status == applications.StatusRejected:
		return adoptions.Adoption{}, adoptions.ErrApplicationRejected
	}
	for _, existing := range r.s.adoptions {
		if existing.PetID == a.PetID {
			return adoptions.Adoption{}, adoptions.ErrPetAlreadyAdopted
		}
	}

	app.Status = applications.StatusApproved
	p.IsAdopted = true

	r.s.apps[app.ID] = app
	r.s.pets[p.ID] = p
	r.s.adoptions[a.ID] = a
	return a, nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.adoptions[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, nil
}

func (r *adoptionRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]adoptions.Adoption, 0, len(r.s.adoptions))
	for _, a := range r.s.adoptions {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AdoptionDate.Equal(out[j].AdoptionDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].AdoptionDate.After(out[j].AdoptionDate)
	})
	return out, nil
}
