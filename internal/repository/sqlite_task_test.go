package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/repository"
	"github.com/matteobrandi/traccia/internal/testutil"
)

func seedProject(t *testing.T, repo *repository.SQLiteProjectRepo) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject("Task host")
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestTaskRepo_CreateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)

	first := testutil.NewTestTask("Initial planning", testutil.WithPrice(100), testutil.WithHours(5))
	first.ProjectID = p.ID
	first.Position = 0
	second := testutil.NewTestTask("Main development", testutil.WithPrice(200), testutil.WithHours(10), testutil.Completed())
	second.ProjectID = p.ID
	second.Position = 1

	require.NoError(t, tasks.Create(ctx, &first))
	require.NoError(t, tasks.Create(ctx, &second))

	got, err := tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Initial planning", got[0].Name)
	assert.Equal(t, 100, got[0].Price)
	assert.Equal(t, 5, got[0].Hours)
	assert.False(t, got[0].Completed)
	assert.Equal(t, "Main development", got[1].Name)
	assert.True(t, got[1].Completed)
}

func TestTaskRepo_ListOrderedByPosition(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)

	// Insert out of position order.
	for i, pos := range []int{2, 0, 1} {
		task := testutil.NewTestTask(string(rune('a' + i)))
		task.ProjectID = p.ID
		task.Position = pos
		require.NoError(t, tasks.Create(ctx, &task))
	}

	got, err := tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, task := range got {
		assert.Equal(t, i, task.Position)
	}
}

func TestTaskRepo_ReplaceForProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)

	old := testutil.NewTestTask("Old task", testutil.WithPrice(300))
	old.ProjectID = p.ID
	require.NoError(t, tasks.Create(ctx, &old))

	replacement := []domain.Task{
		testutil.NewTestTask("Design", testutil.WithPrice(150)),
		testutil.NewTestTask("Build", testutil.WithPrice(150)),
	}
	require.NoError(t, tasks.ReplaceForProject(ctx, p.ID, replacement))

	got, err := tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Design", got[0].Name)
	assert.Equal(t, 0, got[0].Position)
	assert.Equal(t, p.ID, got[0].ProjectID)
	assert.Equal(t, "Build", got[1].Name)
	assert.Equal(t, 1, got[1].Position)
}

func TestTaskRepo_ReplaceForProject_Empty(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)
	task := testutil.NewTestTask("Only task", testutil.WithPrice(50))
	task.ProjectID = p.ID
	require.NoError(t, tasks.Create(ctx, &task))

	require.NoError(t, tasks.ReplaceForProject(ctx, p.ID, nil))

	got, err := tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTaskRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)
	task := testutil.NewTestTask("Removable", testutil.WithPrice(75))
	task.ProjectID = p.ID
	require.NoError(t, tasks.Create(ctx, &task))

	require.NoError(t, tasks.Delete(ctx, task.ID))

	got, err := tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	err = tasks.Delete(ctx, task.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestTaskRepo_RejectsNegativePrice(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)
	task := testutil.NewTestTask("Negative")
	task.ProjectID = p.ID
	task.Price = -10
	assert.Error(t, tasks.Create(ctx, &task))
}

func TestTaskRepo_RejectsOrphanTask(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)

	task := testutil.NewTestTask("Orphan", testutil.WithPrice(10))
	task.ProjectID = "no-such-project"
	assert.Error(t, tasks.Create(context.Background(), &task))
}
