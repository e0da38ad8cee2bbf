package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/sessions"
	"pet-adoption/internal/domain/staff"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func seedPetWithApps(t *testing.T, st *Store, petID string, n int) []string {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, st.Pets().Create(ctx, pets.Pet{ID: petID, Name: "Buddy", CreatedAt: t0}))

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-app-%d", petID, i)
		require.NoError(t, st.Applications().Create(ctx, applications.Application{
			ID:        id,
			PetID:     petID,
			FullName:  fmt.Sprintf("Applicant %d", i),
			Status:    applications.StatusPending,
			CreatedAt: t0.Add(time.Duration(i) * time.Minute),
		}))
		ids = append(ids, id)
	}
	return ids
}

func TestAdopt_ConcurrentSamePetSingleWinner(t *testing.T) {
	st := NewStore()
	appIDs := seedPetWithApps(t, st, "pet-1", 8)
	repo := st.Adoptions()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  []string
		conflict int
	)
	for i, appID := range appIDs {
		wg.Add(1)
		go func(i int, appID string) {
			defer wg.Done()
			_, err := repo.Adopt(context.Background(), adoptions.Adoption{
				ID:            fmt.Sprintf("adoption-%d", i),
				PetID:         "pet-1",
				ApplicationID: appID,
				AdoptedBy:     "x",
				AdoptionDate:  t0,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, appID)
			case assert.ErrorIs(t, err, apperr.ErrConflict):
				conflict++
			}
		}(i, appID)
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, len(appIDs)-1, conflict)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	p, err := st.Pets().GetByID(context.Background(), "pet-1")
	require.NoError(t, err)
	assert.True(t, p.IsAdopted)

	// Solo la solicitud ganadora quedó aprobada; las demás siguen pending
	approved, err := st.Applications().List(context.Background(), applications.ListFilter{Status: applications.StatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, winners[0], approved[0].ID)
}

func TestAdopt_FailuresLeaveNoChanges(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	appIDs := seedPetWithApps(t, st, "pet-1", 2)
	seedPetWithApps(t, st, "pet-2", 0)

	_, err := st.Applications().UpdateStatus(ctx, appIDs[1], applications.StatusPending, applications.StatusRejected)
	require.NoError(t, err)

	repo := st.Adoptions()
	_, err = repo.Adopt(ctx, adoptions.Adoption{ID: "a1", PetID: "pet-1", ApplicationID: appIDs[1]})
	require.ErrorIs(t, err, adoptions.ErrApplicationRejected)

	_, err = repo.Adopt(ctx, adoptions.Adoption{ID: "a2", PetID: "pet-2", ApplicationID: appIDs[0]})
	require.ErrorIs(t, err, adoptions.ErrApplicationMismatch)

	_, err = repo.Adopt(ctx, adoptions.Adoption{ID: "a3", PetID: "ghost", ApplicationID: appIDs[0]})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	p, err := st.Pets().GetByID(ctx, "pet-1")
	require.NoError(t, err)
	assert.False(t, p.IsAdopted)

	a, err := st.Applications().GetByID(ctx, appIDs[0])
	require.NoError(t, err)
	assert.Equal(t, applications.StatusPending, a.Status)
}

func TestPetRepo_UpdateKeepsAdoptedFlagAndDeleteDoesNotCascade(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	appIDs := seedPetWithApps(t, st, "pet-1", 1)

	stale, err := st.Pets().GetByID(ctx, "pet-1")
	require.NoError(t, err)

	_, err = st.Adoptions().Adopt(ctx, adoptions.Adoption{ID: "a1", PetID: "pet-1", ApplicationID: appIDs[0], AdoptionDate: t0})
	require.NoError(t, err)

	// Un PATCH con una copia vieja no puede "des-adoptar"
	stale.Name = "Buddy II"
	require.NoError(t, st.Pets().Update(ctx, stale))

	p, err := st.Pets().GetByID(ctx, "pet-1")
	require.NoError(t, err)
	assert.True(t, p.IsAdopted)
	assert.Equal(t, "Buddy II", p.Name)

	require.NoError(t, st.Pets().Delete(ctx, "pet-1"))
	require.ErrorIs(t, st.Pets().Delete(ctx, "pet-1"), pets.ErrNotFound)

	_, err = st.Applications().GetByID(ctx, appIDs[0])
	assert.NoError(t, err)
	_, err = st.Adoptions().GetByID(ctx, "a1")
	assert.NoError(t, err)
}

func TestPetRepo_ListAvailableAndTagsAreCopied(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	tags := []string{"healthy"}
	require.NoError(t, st.Pets().Create(ctx, pets.Pet{ID: "b", CreatedAt: t0.Add(time.Minute), HealthStatus: tags}))
	require.NoError(t, st.Pets().Create(ctx, pets.Pet{ID: "a", CreatedAt: t0}))
	tags[0] = "mutated"

	got, err := st.Pets().List(ctx, pets.ListFilter{AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, []string{"healthy"}, got[1].HealthStatus)
}

func TestApplicationRepo_UpdateStatusIsCompareAndSet(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	appIDs := seedPetWithApps(t, st, "pet-1", 1)
	repo := st.Applications()

	_, err := repo.UpdateStatus(ctx, appIDs[0], applications.StatusPending, applications.StatusApproved)
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, appIDs[0], applications.StatusPending, applications.StatusRejected)
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = repo.UpdateStatus(ctx, "missing", applications.StatusPending, applications.StatusRejected)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStaffRepo_Uniqueness(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	repo := st.Staff()

	require.NoError(t, repo.Create(ctx, staff.StaffUser{ID: "u1", Username: "admin", Email: "admin@petconnect.mn", Role: auth.RoleAdmin}))

	err := repo.Create(ctx, staff.StaffUser{ID: "u2", Username: "admin", Email: "x@petconnect.mn"})
	require.ErrorIs(t, err, staff.ErrUsernameTaken)

	err = repo.Create(ctx, staff.StaffUser{ID: "u3", Username: "other", Email: "ADMIN@petconnect.mn"})
	require.ErrorIs(t, err, staff.ErrEmailTaken)

	_, err = repo.GetByUsername(ctx, "Admin")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, repo.RecordLogin(ctx, "u1", t0))
	u, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, u.LastLoginAt)
	assert.Equal(t, t0, *u.LastLoginAt)
}

func TestSessionRepo_Lifecycle(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	repo := st.Sessions()

	require.NoError(t, repo.Create(ctx, sessions.Session{Token: "t1", UserID: "u1", ExpiresAt: t0}))
	require.NoError(t, repo.Create(ctx, sessions.Session{Token: "t2", UserID: "u1", ExpiresAt: t0.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, sessions.Session{Token: "t3", UserID: "u2", ExpiresAt: t0.Add(time.Hour)}))

	n, err := repo.DeleteExpired(ctx, t0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repo.DeleteByUser(ctx, "u1"))
	_, err = repo.Get(ctx, "t2")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "t3"))
	require.NoError(t, repo.Delete(ctx, "t3"))
}
