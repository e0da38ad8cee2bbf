package adoptions

import (
	"context"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test store: mascotas + solicitudes + adopciones bajo un mismo lock
// -------------------------

type testStore struct {
	mu        sync.Mutex
	pets      map[string]pets.Pet
	apps      map[string]applications.Application
	adoptions map[string]Adoption
}

func newTestStore() *testStore {
	return &testStore{
		pets:      map[string]pets.Pet{},
		apps:      map[string]applications.Application{},
		adoptions: map[string]Adoption{},
	}
}

type testPetReader struct{ s *testStore }

func (r testPetReader) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

type testAppReader struct{ s *testStore }

func (r testAppReader) GetByID(ctx context.Context, id string) (applications.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.apps[id]
	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}
	return a, nil
}

func (s *testStore) Adopt(ctx context.Context, a Adoption) (Adoption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pets[a.PetID]
	if !ok {
		return Adoption{}, pets.ErrNotFound
	}
	app, ok := s.apps[a.ApplicationID]
	if !ok {
		return Adoption{}, applications.ErrNotFound
	}
	switch {
	case p.IsAdopted:
		return Adoption{}, ErrPetAlreadyAdopted
	case app.PetID != a.PetID:
		return Adoption{}, ErrApplicationMismatch
	case app.Status == applications.StatusRejected:
		return Adoption{}, ErrApplicationRejected
	}

	app.Status = applications.StatusApproved
	p.IsAdopted = true
	s.apps[app.ID] = app
	s.pets[p.ID] = p
	s.adoptions[a.ID] = a
	return a, nil
}

func (s *testStore) GetByID(ctx context.Context, id string) (Adoption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.adoptions[id]
	if !ok {
		return Adoption{}, apperr.ErrNotFound
	}
	return a, nil
}

func (s *testStore) List(ctx context.Context) ([]Adoption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Adoption, 0, len(s.adoptions))
	for _, a := range s.adoptions {
		out = append(out, a)
	}
	return out, nil
}

func newTestService(t *testing.T) (*Service, *testStore) {
	t.Helper()

	st := newTestStore()
	st.pets["pet-1"] = pets.Pet{ID: "pet-1", Name: "Buddy"}
	st.pets["pet-2"] = pets.Pet{ID: "pet-2", Name: "Luna"}
	st.apps["app-1"] = applications.Application{ID: "app-1", PetID: "pet-1", FullName: "Ana Pérez", Status: applications.StatusPending}
	st.apps["app-2"] = applications.Application{ID: "app-2", PetID: "pet-1", FullName: "Juan Díaz", Status: applications.StatusApproved}
	st.apps["app-3"] = applications.Application{ID: "app-3", PetID: "pet-2", FullName: "Sofía Ruiz", Status: applications.StatusRejected}

	svc := NewService(st, testPetReader{st}, testAppReader{st})
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return svc, st
}

// -------------------------
// Tests
// -------------------------

func TestRecordAdoption_FlipsPetAndApprovesApplication(t *testing.T) {
	svc, st := newTestService(t)

	story := "  Vive feliz en el campo  "
	a, err := svc.RecordAdoption(context.Background(), RecordInput{
		PetID:         "pet-1",
		ApplicationID: "app-1",
		Story:         &story,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Pérez", a.AdoptedBy, "adoptedBy se toma del solicitante")
	require.NotNil(t, a.Story)
	assert.Equal(t, "Vive feliz en el campo", *a.Story)
	assert.True(t, a.AdoptionDate.Equal(svc.now()))

	assert.True(t, st.pets["pet-1"].IsAdopted)
	assert.Equal(t, applications.StatusApproved, st.apps["app-1"].Status)
	assert.Len(t, st.adoptions, 1)
}

func TestRecordAdoption_SecondAdoptionConflicts(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := svc.RecordAdoption(ctx, RecordInput{PetID: "pet-1", ApplicationID: "app-2", AdoptedBy: "Familia Díaz"})
	require.NoError(t, err)

	_, err = svc.RecordAdoption(ctx, RecordInput{PetID: "pet-1", ApplicationID: "app-1"})
	require.ErrorIs(t, err, ErrPetAlreadyAdopted)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	assert.Len(t, st.adoptions, 1)
	assert.Equal(t, applications.StatusPending, st.apps["app-1"].Status)
}

func TestRecordAdoption_ReferenceValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    RecordInput
		field string
	}{
		{name: "missing ids", in: RecordInput{}, field: "petId"},
		{name: "unknown pet", in: RecordInput{PetID: "nope", ApplicationID: "app-1"}, field: "petId"},
		{name: "unknown application", in: RecordInput{PetID: "pet-1", ApplicationID: "nope"}, field: "applicationId"},
		{name: "application of another pet", in: RecordInput{PetID: "pet-2", ApplicationID: "app-1"}, field: "applicationId"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, st := newTestService(t)

			_, err := svc.RecordAdoption(context.Background(), tc.in)
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tc.field)
			assert.Empty(t, st.adoptions)
		})
	}
}

func TestRecordAdoption_RejectedApplication(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.RecordAdoption(context.Background(), RecordInput{PetID: "pet-2", ApplicationID: "app-3"})
	require.ErrorIs(t, err, ErrApplicationRejected)
	assert.False(t, st.pets["pet-2"].IsAdopted)
}

func TestApproveAndAdopt(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	a, err := svc.ApproveAndAdopt(ctx, "app-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "pet-1", a.PetID)
	assert.Nil(t, a.Story)
	assert.Equal(t, applications.StatusApproved, st.apps["app-1"].Status)

	got, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = svc.ApproveAndAdopt(ctx, "missing", nil)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.ApproveAndAdopt(ctx, "app-2", nil)
	require.ErrorIs(t, err, ErrPetAlreadyAdopted)
}

func TestRecordAdoption_ConcurrentSamePet(t *testing.T) {
	svc, st := newTestService(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, appID := range []string{"app-1", "app-2"} {
		wg.Add(1)
		go func(i int, appID string) {
			defer wg.Done()
			_, errs[i] = svc.RecordAdoption(context.Background(), RecordInput{PetID: "pet-1", ApplicationID: appID})
		}(i, appID)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, apperr.ErrConflict)
	}
	assert.Equal(t, 1, ok)
	assert.Len(t, st.adoptions, 1)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
