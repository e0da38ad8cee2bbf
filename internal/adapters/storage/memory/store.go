package memory

import (
	"sync"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/sessions"
	"pet-adoption/internal/domain/staff"
)

// Store guarda todas las colecciones detrás de un único lock.
// Un solo mutex (y no uno por repo) es lo que permite que Adopt toque mascota,
// solicitud y adopción como una sola unidad.
type Store struct {
	mu sync.RWMutex

	pets      map[string]pets.Pet
	apps      map[string]applications.Application
	adoptions map[string]adoptions.Adoption
	staff     map[string]staff.StaffUser
	sessions  map[string]sessions.Session
}

func NewStore() *Store {
	return &Store{
		pets:      make(map[string]pets.Pet),
		apps:      make(map[string]applications.Application),
		adoptions: make(map[string]adoptions.Adoption),
		staff:     make(map[string]staff.StaffUser),
		sessions:  make(map[string]sessions.Session),
	}
}

func (s *Store) Pets() pets.Repository                 { return &petRepo{s: s} }
func (s *Store) Applications() applications.Repository { return &applicationRepo{s: s} }
func (s *Store) Adoptions() adoptions.Repository       { return &adoptionRepo{s: s} }
func (s *Store) Staff() staff.Repository               { return &staffRepo{s: s} }
func (s *Store) Sessions() sessions.Repository         { return &sessionRepo{s: s} }
