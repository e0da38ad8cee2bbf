package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"

	"github.com/google/uuid"
)

var ErrNotFound = fmt.Errorf("adoption %w", apperr.ErrNotFound)

type PetReader interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type ApplicationReader interface {
	GetByID(ctx context.Context, id string) (applications.Application, error)
}

type Service struct {
	repo Repository
	pets PetReader
	apps ApplicationReader
	now  func() time.Time
}

func NewService(repo Repository, petReader PetReader, appReader ApplicationReader) *Service {
	return &Service{
		repo: repo,
		pets: petReader,
		apps: appReader,
		now:  time.Now,
	}
}

type RecordInput struct {
	PetID         string
	ApplicationID string
	AdoptedBy     string
	Story         *string
}

// RecordAdoption valida las referencias antes de escribir y delega en repo.Adopt,
// que vuelve a chequear todo dentro de la unidad atómica (otra request pudo ganar).
func (s *Service) RecordAdoption(ctx context.Context, in RecordInput) (Adoption, error) {
	petID := strings.TrimSpace(in.PetID)
	appID := strings.TrimSpace(in.ApplicationID)

	v := apperr.NewValidationError()
	if petID == "" {
		v.Add("petId", "required")
	}
	if appID == "" {
		v.Add("applicationId", "required")
	}
	if err := v.OrNil(); err != nil {
		return Adoption{}, err
	}

	p, err := s.pets.GetByID(ctx, petID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		v.Add("petId", "pet does not exist")
	case err != nil:
		return Adoption{}, err
	}

	app, err := s.apps.GetByID(ctx, appID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		v.Add("applicationId", "application does not exist")
	case err != nil:
		return Adoption{}, err
	case app.PetID != petID:
		v.Add("applicationId", "application belongs to another pet")
	}
	if err := v.OrNil(); err != nil {
		return Adoption{}, err
	}

	if err := checkAdoptable(p, app); err != nil {
		return Adoption{}, err
	}

	adoptedBy := strings.TrimSpace(in.AdoptedBy)
	if adoptedBy == "" {
		adoptedBy = app.FullName
	}

	return s.adopt(ctx, Adoption{
		ID:            uuid.NewString(),
		PetID:         petID,
		ApplicationID: appID,
		AdoptedBy:     adoptedBy,
		Story:         optional(in.Story),
		AdoptionDate:  s.now(),
	})
}

// ApproveAndAdopt aprueba una solicitud y registra la adopción en el mismo paso.
// A diferencia de RecordAdoption, una solicitud o mascota inexistente es 404.
func (s *Service) ApproveAndAdopt(ctx context.Context, applicationID string, story *string) (Adoption, error) {
	app, err := s.apps.GetByID(ctx, strings.TrimSpace(applicationID))
	if err != nil {
		return Adoption{}, err
	}

	p, err := s.pets.GetByID(ctx, app.PetID)
	if err != nil {
		return Adoption{}, err
	}
	if err := checkAdoptable(p, app); err != nil {
		return Adoption{}, err
	}

	return s.adopt(ctx, Adoption{
		ID:            uuid.NewString(),
		PetID:         p.ID,
		ApplicationID: app.ID,
		AdoptedBy:     app.FullName,
		Story:         optional(story),
		AdoptionDate:  s.now(),
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adoption{}, ErrNotFound
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Adoption{}, ErrNotFound
		}
		return Adoption{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	return s.repo.List(ctx)
}

func (s *Service) adopt(ctx context.Context, a Adoption) (Adoption, error) {
	out, err := s.repo.Adopt(ctx, a)
	if err != nil {
		return Adoption{}, err
	}

	logger.FromContext(ctx).Info("pet adopted", map[string]any{
		"pet_id":         out.PetID,
		"application_id": out.ApplicationID,
		"adoption_id":    out.ID,
	})
	return out, nil
}

// checkAdoptable es el chequeo rápido previo; repo.Adopt lo repite bajo lock/tx.
func checkAdoptable(p pets.Pet, app applications.Application) error {
	if p.IsAdopted {
		return ErrPetAlreadyAdopted
	}
	if app.Status == applications.StatusRejected {
		return ErrApplicationRejected
	}
	return nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
