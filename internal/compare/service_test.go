// File: internal/compare/service_test.go
package compare

import (
	"context"
	"path/filepath"
	"testing"

	"unichoice_core/internal/config"
	"unichoice_core/internal/platform/store"
	"unichoice_core/internal/university"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := config.TestConfig()
	cfg.StorePath = filepath.Join(t.TempDir(), "records.db")
	st, err := store.New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st, cfg, zap.NewNop())
}

func TestAdd_AppendsInOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, AddOK, svc.Add(ctx, "u1"))
	assert.Equal(t, AddOK, svc.Add(ctx, "u2"))
	assert.Equal(t, []string{"u1", "u2"}, svc.List(ctx))
}

func TestAdd_RejectsDuplicates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.Equal(t, AddOK, svc.Add(ctx, "u1"))
	assert.Equal(t, AddAlreadyPresent, svc.Add(ctx, "u1"))
	assert.Equal(t, []string{"u1"}, svc.List(ctx))
}

func TestAdd_RejectsFourthEntry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.Equal(t, AddOK, svc.Add(ctx, "u1"))
	require.Equal(t, AddOK, svc.Add(ctx, "u2"))
	require.Equal(t, AddOK, svc.Add(ctx, "u3"))

	assert.Equal(t, AddAtCapacity, svc.Add(ctx, "u4"))
	assert.Equal(t, []string{"u1", "u2", "u3"}, svc.List(ctx))
}

func TestRemove(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.Equal(t, AddOK, svc.Add(ctx, "u1"))
	require.Equal(t, AddOK, svc.Add(ctx, "u2"))

	svc.Remove(ctx, "u1")
	assert.Equal(t, []string{"u2"}, svc.List(ctx))

	// Removing an absent id is a no-op, not an error.
	svc.Remove(ctx, "never-added")
	assert.Equal(t, []string{"u2"}, svc.List(ctx))
}

func TestList_ReadsFreshEachCall(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.Empty(t, svc.List(ctx))
	require.Equal(t, AddOK, svc.Add(ctx, "u1"))
	assert.Equal(t, []string{"u1"}, svc.List(ctx))
}

func TestSelected_JoinsAgainstAggregatedList(t *testing.T) {
	list := []university.University{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}

	got := Selected([]string{"u3", "u1", "ghost"}, list)
	require.Len(t, got, 2)
	// List order wins over selection order.
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, "u3", got[1].ID)
}
