package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test doubles
// -------------------------

var errRepoNotFound = fmt.Errorf("repo: %w", apperr.ErrNotFound)

type testRepo struct {
	byID map[string]StaffUser
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]StaffUser{}}
}

func (r *testRepo) Create(ctx context.Context, u StaffUser) error {
	for _, other := range r.byID {
		if other.Username == u.Username {
			return ErrUsernameTaken
		}
		if other.Email == u.Email {
			return ErrEmailTaken
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Update(ctx context.Context, u StaffUser) error {
	if _, ok := r.byID[u.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (StaffUser, error) {
	u, ok := r.byID[id]
	if !ok {
		return StaffUser{}, errRepoNotFound
	}
	return u, nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (StaffUser, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return StaffUser{}, errRepoNotFound
}

func (r *testRepo) List(ctx context.Context) ([]StaffUser, error) {
	out := make([]StaffUser, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *testRepo) RecordLogin(ctx context.Context, id string, at time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return errRepoNotFound
	}
	u.LastLoginAt = &at
	r.byID[id] = u
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) {
	if p == "" {
		return "", errors.New("empty")
	}
	return "hashed:" + p, nil
}

func (plainHasher) Verify(p, h string) bool { return h == "hashed:"+p }

type testRevoker struct {
	revoked []string
}

func (r *testRevoker) RevokeUser(ctx context.Context, userID string) error {
	r.revoked = append(r.revoked, userID)
	return nil
}

func newTestService(t *testing.T) (*Service, *testRepo, *testRevoker) {
	t.Helper()

	repo := newTestRepo()
	rev := &testRevoker{}
	svc := NewService(repo, plainHasher{}, rev)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return svc, repo, rev
}

// -------------------------
// Tests
// -------------------------

func TestCreate_HashesPasswordAndDefaultsRole(t *testing.T) {
	svc, repo, _ := newTestService(t)

	u, err := svc.Create(context.Background(), CreateInput{
		Username: "vet1",
		Email:    "vet1@petconnect.mn",
		Password: "secret1",
		FullName: "Vet One",
	})
	require.NoError(t, err)

	assert.Equal(t, auth.RoleStaff, u.Role)
	assert.True(t, u.IsActive)
	assert.Equal(t, "hashed:secret1", repo.byID[u.ID].PasswordHash)
	assert.True(t, u.CreatedAt.Equal(u.UpdatedAt))
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		Username: "with space",
		Email:    "nope",
		Password: "123",
		Role:     "owner",
	})

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	for _, f := range []string{"username", "email", "password", "fullName", "role"} {
		assert.Contains(t, ve.Fields, f)
	}

	// más de 72 bytes no entra en bcrypt: 400, no 500
	_, err = svc.Create(context.Background(), CreateInput{
		Username: "vet1",
		Email:    "vet1@petconnect.mn",
		Password: strings.Repeat("x", MaxPasswordBytes+1),
		FullName: "Vet One",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be at most 72 bytes", ve.Fields["password"])

	_, err = svc.Create(context.Background(), CreateInput{
		Username: "vet1",
		Email:    "vet1@petconnect.mn",
		Password: strings.Repeat("x", MaxPasswordBytes),
		FullName: "Vet One",
	})
	require.NoError(t, err)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	in := CreateInput{Username: "vet1", Email: "vet1@petconnect.mn", Password: "secret1", FullName: "Vet One"}
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	in.Email = "other@petconnect.mn"
	_, err = svc.Create(ctx, in)
	require.ErrorIs(t, err, ErrUsernameTaken)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdate_RehashesPassword(t *testing.T) {
	svc, repo, rev := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: "vet1", Email: "vet1@petconnect.mn", Password: "secret1", FullName: "Vet One"})
	require.NoError(t, err)

	later := svc.now().Add(time.Hour)
	svc.now = func() time.Time { return later }

	role := "admin"
	pw := "secret2"
	updated, err := svc.Update(ctx, "admin-1", u.ID, UpdateInput{Role: &role, Password: &pw})
	require.NoError(t, err)

	assert.Equal(t, auth.RoleAdmin, updated.Role)
	assert.Equal(t, "hashed:secret2", repo.byID[u.ID].PasswordHash)
	assert.True(t, updated.UpdatedAt.Equal(later))
	assert.Equal(t, []string{u.ID}, rev.revoked)

	_, err = svc.Update(ctx, "admin-1", "missing", UpdateInput{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_RevokesSessionsOnlyOnRoleOrPasswordChange(t *testing.T) {
	tests := []struct {
		name   string
		in     func() UpdateInput
		revoke bool
	}{
		{
			name:   "demoted to staff",
			in:     func() UpdateInput { r := "staff"; return UpdateInput{Role: &r} },
			revoke: true,
		},
		{
			name:   "password changed",
			in:     func() UpdateInput { p := "newpass1"; return UpdateInput{Password: &p} },
			revoke: true,
		},
		{
			name:   "same role sent again",
			in:     func() UpdateInput { r := "admin"; return UpdateInput{Role: &r} },
			revoke: false,
		},
		{
			name:   "only full name",
			in:     func() UpdateInput { n := "Boss Two"; return UpdateInput{FullName: &n} },
			revoke: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, rev := newTestService(t)
			ctx := context.Background()

			u, err := svc.Create(ctx, CreateInput{Username: "boss2", Email: "boss2@petconnect.mn", Password: "secret1", FullName: "Boss", Role: "admin"})
			require.NoError(t, err)

			_, err = svc.Update(ctx, "admin-1", u.ID, tc.in())
			require.NoError(t, err)

			if tc.revoke {
				assert.Equal(t, []string{u.ID}, rev.revoked)
			} else {
				assert.Empty(t, rev.revoked)
			}
		})
	}
}

func TestUpdate_AdminCannotDemoteSelf(t *testing.T) {
	svc, repo, rev := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: "boss", Email: "boss@petconnect.mn", Password: "secret1", FullName: "Boss", Role: "admin"})
	require.NoError(t, err)

	role := "staff"
	_, err = svc.Update(ctx, u.ID, u.ID, UpdateInput{Role: &role})
	require.ErrorIs(t, err, ErrSelfLockout)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, auth.RoleAdmin, repo.byID[u.ID].Role)
	assert.Empty(t, rev.revoked)
}

func TestDeactivate_RevokesSessions(t *testing.T) {
	svc, repo, rev := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: "vet1", Email: "vet1@petconnect.mn", Password: "secret1", FullName: "Vet One"})
	require.NoError(t, err)

	got, err := svc.Deactivate(ctx, "admin-1", u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.False(t, repo.byID[u.ID].IsActive)
	assert.Equal(t, []string{u.ID}, rev.revoked)

	// idempotente
	_, err = svc.Deactivate(ctx, "admin-1", u.ID)
	require.NoError(t, err)
}

func TestDeactivate_RejectsOwnAccount(t *testing.T) {
	svc, repo, rev := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: "boss", Email: "boss@petconnect.mn", Password: "secret1", FullName: "Boss", Role: "admin"})
	require.NoError(t, err)

	_, err = svc.Deactivate(ctx, u.ID, u.ID)
	require.ErrorIs(t, err, ErrSelfLockout)
	assert.True(t, repo.byID[u.ID].IsActive)
	assert.Empty(t, rev.revoked)
}

func TestSeed_SkipsExisting(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	n, err := svc.Seed(ctx, DefaultAccounts)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.Seed(ctx, DefaultAccounts)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, admin.Role)
	assert.True(t, plainHasher{}.Verify("admin123", admin.PasswordHash))
}
