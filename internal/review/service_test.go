// File: internal/review/service_test.go
package review

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"unichoice_core/internal/config"
	"unichoice_core/internal/platform/store"
	"unichoice_core/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const seedReviews = `[
	{"id":"seed-1","uniId":"aau","author":"Hanna T.","rating":5,"comment":"Great library.","date":"2024-11-02","helpfulCount":14},
	{"id":"seed-2","uniId":"bdu","author":"Selam G.","rating":4,"comment":"New lab machines.","date":"2024-09-27","helpfulCount":9}
]`

func newTestService(t *testing.T, seed string) (*Service, *user.Service) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.TestConfig()
	cfg.StorePath = filepath.Join(dir, "records.db")
	if seed != "" {
		cfg.ReviewsCatalogSource = filepath.Join(dir, "reviews.json")
		require.NoError(t, os.WriteFile(cfg.ReviewsCatalogSource, []byte(seed), 0o644))
	}

	st, err := store.New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	users := user.NewService(user.NewStoreRepository(st), cfg, zap.NewNop())
	return NewService(NewStoreRepository(st), users, cfg, zap.NewNop()), users
}

func signupStudent(t *testing.T, users *user.Service, name string) {
	t.Helper()
	_, ok := users.Signup(context.Background(), user.SignupRequest{
		Email: name + "@x.com", Password: "pw", Name: name, Role: user.RoleStudent,
	})
	require.True(t, ok)
}

func TestListForUniversity_MergesSeedAndLocal(t *testing.T) {
	svc, users := newTestService(t, seedReviews)
	ctx := context.Background()
	signupStudent(t, users, "Alice")

	_, ok := svc.AddReview(ctx, "aau", 4, "Solid CS department.")
	require.True(t, ok)

	got := svc.ListForUniversity(ctx, "aau")
	require.Len(t, got, 2)
	// Seed entries come first, local entries after.
	assert.Equal(t, "seed-1", got[0].ID)
	assert.Equal(t, "Alice", got[1].Author)

	assert.Len(t, svc.ListForUniversity(ctx, "bdu"), 1)
	assert.Empty(t, svc.ListForUniversity(ctx, "unknown"))
}

func TestListForUniversity_SurvivesMissingSeed(t *testing.T) {
	svc, users := newTestService(t, "")
	ctx := context.Background()
	signupStudent(t, users, "Alice")

	_, ok := svc.AddReview(ctx, "aau", 5, "Still works without the seed file.")
	require.True(t, ok)

	assert.Len(t, svc.ListForUniversity(ctx, "aau"), 1)
}

func TestAddReview_Validation(t *testing.T) {
	svc, users := newTestService(t, "")
	ctx := context.Background()

	// No session.
	_, ok := svc.AddReview(ctx, "aau", 4, "anonymous")
	assert.False(t, ok)

	signupStudent(t, users, "Alice")

	_, ok = svc.AddReview(ctx, "aau", 0, "rating too low")
	assert.False(t, ok)
	_, ok = svc.AddReview(ctx, "aau", 6, "rating too high")
	assert.False(t, ok)
	_, ok = svc.AddReview(ctx, "aau", 4, "   ")
	assert.False(t, ok)

	rev, ok := svc.AddReview(ctx, "aau", 4, "fine")
	require.True(t, ok)
	assert.Equal(t, "Alice", rev.Author)
	assert.Equal(t, 0, rev.HelpfulCount)
}

func TestAddReply_AppendsToLocalReview(t *testing.T) {
	svc, users := newTestService(t, seedReviews)
	ctx := context.Background()
	signupStudent(t, users, "Bob")

	rev, ok := svc.AddReview(ctx, "aau", 4, "Is the dorm wifi decent?")
	require.True(t, ok)

	// Reply as a university representative.
	users.Logout(ctx)
	_, ok = users.Signup(ctx, user.SignupRequest{
		Email: "rep@aau.edu.et", Password: "pw", Name: "AAU Admissions", Role: user.RoleUniversity,
	})
	require.True(t, ok)

	reply, ok := svc.AddReply(ctx, rev.ID, "Yes, all dorms were covered in 2024.")
	require.True(t, ok)
	assert.True(t, reply.IsUniversityReply)
	assert.Equal(t, rev.ID, reply.ReviewID)

	got := svc.ListForUniversity(ctx, "aau")
	var found *Review
	for i := range got {
		if got[i].ID == rev.ID {
			found = &got[i]
		}
	}
	require.NotNil(t, found)
	require.NotEmpty(t, found.Replies)
	last := found.Replies[len(found.Replies)-1]
	assert.Equal(t, "AAU Admissions", last.Author)
}

func TestAddReply_StudentReplyIsNotUniversityReply(t *testing.T) {
	svc, users := newTestService(t, "")
	ctx := context.Background()
	signupStudent(t, users, "Alice")

	rev, ok := svc.AddReview(ctx, "aau", 5, "Loved it.")
	require.True(t, ok)

	reply, ok := svc.AddReply(ctx, rev.ID, "Same here!")
	require.True(t, ok)
	assert.False(t, reply.IsUniversityReply)
}

func TestAddReply_SeedOnlyReviewIsSilentNoOp(t *testing.T) {
	svc, users := newTestService(t, seedReviews)
	ctx := context.Background()
	signupStudent(t, users, "Alice")

	// The review exists in the seed catalog but not in the local list, so the
	// reply is dropped rather than persisted.
	_, ok := svc.AddReply(ctx, "seed-1", "this reply goes nowhere")
	assert.False(t, ok)

	got := svc.ListForUniversity(ctx, "aau")
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Replies)
}

func TestMarkHelpful(t *testing.T) {
	svc, users := newTestService(t, seedReviews)
	ctx := context.Background()
	signupStudent(t, users, "Alice")

	rev, ok := svc.AddReview(ctx, "aau", 4, "helpful?")
	require.True(t, ok)

	assert.True(t, svc.MarkHelpful(ctx, rev.ID))
	assert.True(t, svc.MarkHelpful(ctx, rev.ID))

	got := svc.ListForUniversity(ctx, "aau")
	last := got[len(got)-1]
	assert.Equal(t, 2, last.HelpfulCount)

	// Seed reviews cannot be voted on.
	assert.False(t, svc.MarkHelpful(ctx, "seed-1"))
}

func TestListByAuthor(t *testing.T) {
	svc, users := newTestService(t, seedReviews)
	ctx := context.Background()

	signupStudent(t, users, "Alice")
	_, ok := svc.AddReview(ctx, "aau", 4, "mine")
	require.True(t, ok)

	users.Logout(ctx)
	signupStudent(t, users, "Bob")
	_, ok = svc.AddReview(ctx, "bdu", 5, "bobs")
	require.True(t, ok)

	mine := svc.ListByAuthor(ctx)
	require.Len(t, mine, 1)
	assert.Equal(t, "Bob", mine[0].Author)

	users.Logout(ctx)
	assert.Empty(t, svc.ListByAuthor(ctx))
}
