package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/cubegen/pkg/cubegen/dataset"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
)

// TestSchemaCreationIdempotent tests that running initSchema multiple times is safe
func TestSchemaCreationIdempotent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < 3; i++ {
		require.NoError(t, initSchema(ctx, db), "initSchema iteration %d", i)
	}

	var count int
	err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count) // datasets, examples
}

// TestReopenPreservesData tests that a dataset survives closing and reopening the file
func TestReopenPreservesData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	st, err := OpenSQLite(ctx, dbPath)
	require.NoError(t, err)

	d := dataset.New("persist", now)
	d.Append(dataset.Example{PromptText: "mossy stone", Rating: dataset.Rating(0.9), CreatedAt: now}, now)
	require.NoError(t, st.SaveDataset(ctx, d))
	require.NoError(t, st.Close())

	st, err = OpenSQLite(ctx, dbPath)
	require.NoError(t, err)
	defer st.Close()

	got, ok, err := st.LoadDataset(ctx, d.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "persist", got.Name)
	assert.Equal(t, 1, got.Version)
	require.Len(t, got.Examples, 1)
	assert.Equal(t, "mossy stone", got.Examples[0].PromptText)
	assert.Equal(t, 0.9, got.Examples[0].EffectiveRating())
	assert.True(t, now.Equal(got.Examples[0].CreatedAt))
}

// TestOpenMissingDirectory tests that an unopenable path wraps ErrStoreUnavailable
func TestOpenMissingDirectory(t *testing.T) {
	_, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "no", "such", "dir", "test.db"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalerr.ErrStoreUnavailable))
}
