package applications

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = fmt.Errorf("application %w", apperr.ErrNotFound)
	ErrInvalidStatus  = fmt.Errorf("%w: status must be one of pending, approved, rejected", apperr.ErrInvalidInput)
	ErrAlreadyDecided = fmt.Errorf("%w: application already decided", apperr.ErrConflict)
	ErrPetAdopted     = fmt.Errorf("%w: pet already adopted", apperr.ErrConflict)
)

// PetReader evita depender de todo pets.Service (solo validamos la referencia).
type PetReader interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	repo Repository
	pets PetReader
	now  func() time.Time
}

func NewService(repo Repository, petReader PetReader) *Service {
	return &Service{
		repo: repo,
		pets: petReader,
		now:  time.Now,
	}
}

type SubmitInput struct {
	PetID           string
	FullName        string
	PhoneNumber     string
	Email           string
	Age             int
	Address         string
	LivingCondition string
	Experience      *string
	Reason          *string
}

// Submit valida todo antes de escribir. La mascota debe existir y seguir disponible.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Application, error) {
	a := Application{
		ID:              uuid.NewString(),
		PetID:           strings.TrimSpace(in.PetID),
		FullName:        strings.TrimSpace(in.FullName),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		Email:           strings.TrimSpace(in.Email),
		Age:             in.Age,
		Address:         strings.TrimSpace(in.Address),
		LivingCondition: LivingCondition(strings.TrimSpace(in.LivingCondition)),
		Experience:      optional(in.Experience),
		Reason:          optional(in.Reason),
		Status:          StatusPending,
		CreatedAt:       s.now(),
	}

	v := validate(a)
	if a.PetID != "" {
		p, err := s.pets.GetByID(ctx, a.PetID)
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			v.Add("petId", "pet does not exist")
		case err != nil:
			return Application{}, err
		case p.IsAdopted && !v.HasErrors():
			return Application{}, ErrPetAdopted
		}
	}
	if err := v.OrNil(); err != nil {
		return Application{}, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

// Decide cambia el status de una solicitud pending.
// pending -> pending es no-op; cualquier cambio desde un estado ya decidido es ErrAlreadyDecided.
func (s *Service) Decide(ctx context.Context, id, status string) (Application, error) {
	to, ok := ParseStatus(strings.TrimSpace(status))
	if !ok {
		return Application{}, ErrInvalidStatus
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	if a.Status != StatusPending {
		return Application{}, ErrAlreadyDecided
	}
	if to == StatusPending {
		return a, nil
	}

	updated, err := s.repo.UpdateStatus(ctx, a.ID, StatusPending, to)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			return Application{}, ErrAlreadyDecided
		case errors.Is(err, apperr.ErrNotFound):
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Application{}, ErrNotFound
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Application, error) {
	if filter.Status != "" {
		if _, ok := ParseStatus(string(filter.Status)); !ok {
			return nil, ErrInvalidStatus
		}
	}
	return s.repo.List(ctx, filter)
}

func validate(a Application) *apperr.ValidationError {
	v := apperr.NewValidationError()

	if a.PetID == "" {
		v.Add("petId", "required")
	}
	if a.FullName == "" {
		v.Add("fullName", "required")
	}
	if a.PhoneNumber == "" {
		v.Add("phoneNumber", "required")
	}
	if a.Email == "" {
		v.Add("email", "required")
	} else if _, err := mail.ParseAddress(a.Email); err != nil {
		v.Add("email", "invalid email address")
	}
	if a.Age < MinApplicantAge {
		v.Add("age", fmt.Sprintf("must be at least %d", MinApplicantAge))
	}
	if a.Address == "" {
		v.Add("address", "required")
	}
	if !a.LivingCondition.Valid() {
		v.Add("livingCondition", "must be one of apartment, house, house-with-yard")
	}
	return v
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
