package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/platform/apperr"
)

type applicationRepo struct {
	s *Store
}

func (r *applicationRepo) Create(ctx context.Context, a applications.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("application id required")
	}
	if _, exists := r.s.apps[a.ID]; exists {
		return errors.New("application already exists")
	}
	r.s.apps[a.ID] = a
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.apps[id]
	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}
	return a, nil
}

func (r *applicationRepo) List(ctx context.Context, filter applications.ListFilter) ([]applications.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]applications.Application, 0)
	for _, a := range r.s.apps {
		if filter.PetID != "" && a.PetID != filter.PetID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}

	// Más recientes primero
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, from, to applications.Status) (applications.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.apps[id]
	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}
	if a.Status != from {
		return applications.Application{}, fmt.Errorf("%w: application status is %s", apperr.ErrConflict, a.Status)
	}
	a.Status = to
	r.s.apps[id] = a
	return a, nil
}
