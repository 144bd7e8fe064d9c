package user

import (
	"context"
	"path/filepath"
	"testing"

	"unichoice_core/internal/config"
	"unichoice_core/internal/platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	cfg := config.TestConfig()
	cfg.StorePath = filepath.Join(t.TempDir(), "records.db")
	st, err := store.New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewService(NewStoreRepository(st), cfg, zap.NewNop()), st
}

func TestSignup_CreatesAccountAndOpensSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, ok := svc.Signup(ctx, SignupRequest{Email: "a@x.com", Password: "secret1", Name: "Amanuel", Role: RoleStudent})
	require.True(t, ok)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, RoleStudent, u.Role)
	assert.NotEmpty(t, u.CreatedAt)

	// Signup auto-logs-in.
	session, ok := svc.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, u.ID, session.ID)
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, ok := svc.Signup(ctx, SignupRequest{Email: "a@x.com", Password: "p1", Name: "First", Role: RoleStudent})
	require.True(t, ok)

	_, ok = svc.Signup(ctx, SignupRequest{Email: "a@x.com", Password: "p2", Name: "Second", Role: RoleStudent})
	assert.False(t, ok)

	// The directory must be left untouched by the rejected signup.
	dir := svc.repo.Directory(ctx)
	require.Len(t, dir, 1)
	assert.Equal(t, "First", dir[0].Name)
}

func TestSignup_EmailUniquenessIsCaseSensitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, ok := svc.Signup(ctx, SignupRequest{Email: "a@x.com", Password: "p1", Name: "Lower", Role: RoleStudent})
	require.True(t, ok)

	// Exact-match uniqueness: a differently-cased email is a distinct account.
	_, ok = svc.Signup(ctx, SignupRequest{Email: "A@x.com", Password: "p2", Name: "Upper", Role: RoleStudent})
	assert.True(t, ok)
}

func TestSignup_RejectsInvalidRequest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, ok := svc.Signup(ctx, SignupRequest{Email: "not-an-email", Password: "p", Name: "N", Role: RoleStudent})
	assert.False(t, ok)

	_, ok = svc.Signup(ctx, SignupRequest{Email: "b@x.com", Password: "p", Name: "N", Role: Role("admin")})
	assert.False(t, ok)

	assert.Empty(t, svc.repo.Directory(ctx))
}

func TestLogin_ExactCredentialMatch(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, ok := svc.Signup(ctx, SignupRequest{Email: "a@x.com", Password: "secret1", Name: "Amanuel", Role: RoleStudent})
	require.True(t, ok)
	svc.Logout(ctx)

	_, ok = svc.Login(ctx, "a@x.com", "wrong")
	assert.False(t, ok)
	_, ok = svc.Login(ctx, "missing@x.com", "secret1")
	assert.False(t, ok)

	u, ok := svc.Login(ctx, "a@x.com", "secret1")
	require.True(t, ok)
	assert.Equal(t, "Amanuel", u.Name)

	// The persisted session record never carries the password.
	raw, found := st.Get(ctx, keySession)
	require.True(t, found)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret1")
}

func TestUpdateUser_MergesIntoSessionAndDirectory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, ok := svc.Signup(ctx, SignupRequest{Email: "a@x.com", Password: "secret1", Name: "Amanuel", Role: RoleStudent})
	require.True(t, ok)

	bio := "CS student"
	year := 2027
	require.True(t, svc.UpdateUser(ctx, Patch{Bio: &bio, GraduationYear: &year}))

	session, ok := svc.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "CS student", session.Bio)
	assert.Equal(t, 2027, session.GraduationYear)
	// Untouched fields survive the merge.
	assert.Equal(t, "Amanuel", session.Name)

	dir := svc.repo.Directory(ctx)
	require.Len(t, dir, 1)
	assert.Equal(t, "CS student", dir[0].Bio)
	// Credentials are preserved: login still works after the update.
	svc.Logout(ctx)
	_, ok = svc.Login(ctx, "a@x.com", "secret1")
	assert.True(t, ok)
}

func TestUpdateUser_RequiresActiveSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	bio := "nope"
	assert.False(t, svc.UpdateUser(ctx, Patch{Bio: &bio}))
}

func TestLogout_ClearsSessionOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, ok := svc.Signup(ctx, SignupRequest{Email: "a@x.com", Password: "p", Name: "A", Role: RoleGuest})
	require.True(t, ok)

	svc.Logout(ctx)

	_, ok = svc.Current(ctx)
	assert.False(t, ok)
	assert.Len(t, svc.repo.Directory(ctx), 1)
}
