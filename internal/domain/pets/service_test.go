package pets

import (
	"context"
	"sort"
	"testing"
	"time"

	"pet-adoption/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	cur, ok := r.byID[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.IsAdopted = cur.IsAdopted
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	out := []Pet{}
	for _, p := range r.byID {
		if filter.AvailableOnly && p.IsAdopted {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

var t0 = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return t0 }
	return svc, repo
}

func validInput() CreateInput {
	return CreateInput{
		Name:         " Buddy ",
		Species:      "dog",
		Breed:        "Mixed",
		Age:          "2 years",
		Weight:       "12 kg",
		Gender:       "male",
		Description:  "Good boy",
		HealthStatus: []string{"healthy", " healthy ", "", "vaccinated"},
		ImageURL:     strPtr("  "),
	}
}

func TestCreate_NormalizesAndDefaults(t *testing.T) {
	svc, repo := newTestService()

	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Buddy", p.Name)
	assert.Equal(t, []string{"healthy", "vaccinated"}, p.HealthStatus)
	assert.Nil(t, p.ImageURL)
	assert.False(t, p.IsAdopted)
	assert.Equal(t, t0, p.CreatedAt)
	assert.Contains(t, repo.byID, p.ID)
}

func TestCreate_Validation(t *testing.T) {
	svc, repo := newTestService()

	in := validInput()
	in.Name = ""
	in.Species = "dragon"
	in.Gender = "unknown"

	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, apperr.ErrInvalidInput)

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "species")
	assert.Contains(t, ve.Fields, "gender")
	assert.Empty(t, repo.byID)
}

func TestUpdate_PartialAndImageClear(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := validInput()
	in.ImageURL = strPtr("https://example.com/a.jpg")
	p, err := svc.Create(ctx, in)
	require.NoError(t, err)

	name := "Max"
	got, err := svc.Update(ctx, p.ID, UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Max", got.Name)
	require.NotNil(t, got.ImageURL)

	got, err = svc.Update(ctx, p.ID, UpdateInput{ImageURL: OptionalString{Present: true}})
	require.NoError(t, err)
	assert.Nil(t, got.ImageURL)

	empty := ""
	_, err = svc.Update(ctx, p.ID, UpdateInput{Breed: &empty})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Update(ctx, "missing", UpdateInput{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListAvailable_HidesAdopted(t *testing.T) {
	svc, repo := newTestService()
	repo.byID["a"] = Pet{ID: "a"}
	repo.byID["b"] = Pet{ID: "b", IsAdopted: true}

	avail, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, avail, 1)
	assert.Equal(t, "a", avail[0].ID)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	repo.byID["a"] = Pet{ID: "a"}

	require.NoError(t, svc.Delete(context.Background(), "a"))
	require.ErrorIs(t, svc.Delete(context.Background(), "a"), ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), " "), ErrNotFound)
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	n, err := svc.Seed(ctx, SamplePets)
	require.NoError(t, err)
	assert.Equal(t, len(SamplePets), n)
	assert.Len(t, repo.byID, len(SamplePets))

	n, err = svc.Seed(ctx, SamplePets)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, repo.byID, len(SamplePets))
}
