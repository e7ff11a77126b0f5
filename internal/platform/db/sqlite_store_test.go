package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirequality/internal/domain/hires"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "hires.db"), true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	created, err := store.CreateHire(ctx, hires.HireRecord{
		ID:                     "h-1",
		HireDate:               "2025-01-10T09:30:00Z",
		FirstPerformanceRating: "Good",
		ProbationOutcome:       "Passed",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10", created.HireDate)

	got, err := store.GetHire(ctx, "h-1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = store.CreateHire(ctx, hires.HireRecord{ID: "h-1", HireDate: "2025-01-11"})
	assert.ErrorIs(t, err, hires.ErrDuplicateID)

	_, err = store.GetHire(ctx, "missing")
	assert.ErrorIs(t, err, hires.ErrNotFound)

	require.NoError(t, store.Ping(ctx))
}

func TestSQLiteStoreGeneratesIDAndKeepsEmptyFields(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	created, err := store.CreateHire(ctx, hires.HireRecord{HireDate: "2025-02-01"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := store.GetHire(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FirstPerformanceRating)
	assert.Empty(t, got.ProbationOutcome)
}

func TestSQLiteStoreRejectsBadDate(t *testing.T) {
	store := openTestSQLite(t)
	_, err := store.CreateHire(context.Background(), hires.HireRecord{HireDate: "soon"})
	assert.True(t, errors.Is(err, hires.ErrInvalidRecord))
}

func TestSQLiteStoreListFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)
	for _, r := range []hires.HireRecord{
		{ID: "c", HireDate: "2025-02-15"},
		{ID: "b", HireDate: "2025-01-20"},
		{ID: "a", HireDate: "2025-01-20"},
		{ID: "d", HireDate: "2025-03-01"},
	} {
		_, err := store.CreateHire(ctx, r)
		require.NoError(t, err)
	}

	all, err := store.ListHires(ctx, hires.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(all))

	from := time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	filtered, err := store.ListHires(ctx, hires.Filter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, ids(filtered))

	count, err := store.CountHires(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hires.db")
	require.NoError(t, MigrateSQLite(path))
	require.NoError(t, MigrateSQLite(path))
}

func ids(records []hires.HireRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
