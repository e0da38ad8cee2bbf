package stats

import (
	"context"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
)

// Stats se recalcula en cada request; no hay contadores guardados.
// HappyFamilies es sinónimo de TotalAdopted (el dashboard muestra ambos).
type Stats struct {
	TotalAdopted        int
	CurrentPets         int
	ActivePets          int
	HappyFamilies       int
	TodayApplications   int
	MonthlyAdoptions    int
	PendingApplications int
	PendingPets         int
}

type PetLister interface {
	List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error)
}

type ApplicationLister interface {
	List(ctx context.Context, filter applications.ListFilter) ([]applications.Application, error)
}

type AdoptionLister interface {
	List(ctx context.Context) ([]adoptions.Adoption, error)
}

type Service struct {
	pets      PetLister
	apps      ApplicationLister
	adoptions AdoptionLister

	// loc define dónde empieza "hoy" y "este mes".
	loc *time.Location
	now func() time.Time
}

func NewService(p PetLister, a ApplicationLister, ad AdoptionLister, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		pets:      p,
		apps:      a,
		adoptions: ad,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *Service) Compute(ctx context.Context) (Stats, error) {
	allPets, err := s.pets.List(ctx, pets.ListFilter{})
	if err != nil {
		return Stats{}, err
	}
	apps, err := s.apps.List(ctx, applications.ListFilter{})
	if err != nil {
		return Stats{}, err
	}
	ads, err := s.adoptions.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	now := s.now().In(s.loc)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)

	var out Stats
	out.TotalAdopted = len(ads)
	out.HappyFamilies = len(ads)

	for _, a := range ads {
		if !a.AdoptionDate.Before(startOfMonth) {
			out.MonthlyAdoptions++
		}
	}

	for _, a := range apps {
		if !a.CreatedAt.Before(startOfDay) {
			out.TodayApplications++
		}
		if a.Status == applications.StatusPending {
			out.PendingApplications++
		}
	}

	pending := applications.PendingPetIDs(apps)
	for _, p := range allPets {
		if p.IsAdopted {
			continue
		}
		out.ActivePets++
		if _, ok := pending[p.ID]; ok {
			out.PendingPets++
		}
	}
	out.CurrentPets = out.ActivePets

	return out, nil
}
