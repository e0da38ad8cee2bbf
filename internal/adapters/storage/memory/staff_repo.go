package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pet-adoption/internal/domain/staff"
)

type staffRepo struct {
	s *Store
}

func (r *staffRepo) Create(ctx context.Context, u staff.StaffUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("staff user id required")
	}
	if _, exists := r.s.staff[u.ID]; exists {
		return errors.New("staff user already exists")
	}
	if err := r.checkUnique(u); err != nil {
		return err
	}
	r.s.staff[u.ID] = u
	return nil
}

func (r *staffRepo) Update(ctx context.Context, u staff.StaffUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, exists := r.s.staff[u.ID]
	if !exists {
		return staff.ErrNotFound
	}
	if err := r.checkUnique(u); err != nil {
		return err
	}
	// username y lastLoginAt no se editan por acá
	u.Username = cur.Username
	u.LastLoginAt = cur.LastLoginAt
	u.CreatedAt = cur.CreatedAt
	r.s.staff[u.ID] = u
	return nil
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (staff.StaffUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.staff[id]
	if !ok {
		return staff.StaffUser{}, staff.ErrNotFound
	}
	return u, nil
}

func (r *staffRepo) GetByUsername(ctx context.Context, username string) (staff.StaffUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.staff {
		if u.Username == username {
			return u, nil
		}
	}
	return staff.StaffUser{}, staff.ErrNotFound
}

func (r *staffRepo) List(ctx context.Context) ([]staff.StaffUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]staff.StaffUser, 0, len(r.s.staff))
	for _, u := range r.s.staff {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Username < out[j].Username
	})
	return out, nil
}

func (r *staffRepo) RecordLogin(ctx context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.staff[id]
	if !ok {
		return staff.ErrNotFound
	}
	u.LastLoginAt = &at
	r.s.staff[id] = u
	return nil
}

// checkUnique asume el lock tomado.
func (r *staffRepo) checkUnique(u staff.StaffUser) error {
	for _, other := range r.s.staff {
		if other.ID == u.ID {
			continue
		}
		if other.Username == u.Username {
			return staff.ErrUsernameTaken
		}
		if strings.EqualFold(other.Email, u.Email) {
			return staff.ErrEmailTaken
		}
	}
	return nil
}
