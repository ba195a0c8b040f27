package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteobrandi/traccia/internal/repository"
	"github.com/matteobrandi/traccia/internal/testutil"
)

func TestGoalAwardRepo_RecordAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteGoalAwardRepo(database)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Record(ctx, "first-milestone", now))
	require.NoError(t, repo.Record(ctx, "liftoff", now.Add(time.Hour)))

	awarded, err := repo.ListAwarded(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first-milestone", "liftoff"}, awarded)
}

func TestGoalAwardRepo_RecordIsIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteGoalAwardRepo(database)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Record(ctx, "first-milestone", now))
	require.NoError(t, repo.Record(ctx, "first-milestone", now.Add(time.Hour)))

	awarded, err := repo.ListAwarded(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first-milestone"}, awarded)
}

func TestGoalAwardRepo_EmptyList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteGoalAwardRepo(database)

	awarded, err := repo.ListAwarded(context.Background())
	require.NoError(t, err)
	assert.Empty(t, awarded)
}
