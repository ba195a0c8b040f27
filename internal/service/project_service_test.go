package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteobrandi/traccia/internal/domain"
)

func TestProjectService_Create_AppliesDefaults(t *testing.T) {
	e := setupEnv(t)
	svc := newProjectService(e, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProjectInput{Title: "Bakery website", Client: "Forno Rossi"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProjectActive, p.Status)
	assert.Equal(t, 300, p.TotalBudget)

	require.Len(t, p.Tasks, 2)
	assert.Equal(t, "Initial planning", p.Tasks[0].Name)
	assert.Equal(t, 5, p.Tasks[0].Hours)
	assert.Equal(t, "Main development", p.Tasks[1].Name)
	assert.Equal(t, 150, p.Tasks[0].Price)
	assert.Equal(t, 150, p.Tasks[1].Price)

	// Roundtrip through the store.
	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bakery website", fetched.Title)
	require.Len(t, fetched.Tasks, 2)
	assert.Equal(t, 300, fetched.TotalBudget)
}

func TestProjectService_Create_ExplicitBudgetUnevenSplit(t *testing.T) {
	e := setupEnv(t)
	svc := newProjectService(e, nil)

	budget := 301.0
	p, err := svc.Create(context.Background(), CreateProjectInput{Title: "Odd budget", Budget: &budget})
	require.NoError(t, err)
	assert.Equal(t, 301, p.TotalBudget)
	assert.Equal(t, []int{151, 150}, []int{p.Tasks[0].Price, p.Tasks[1].Price})
}

func TestProjectService_Create_SkipStarterTasks(t *testing.T) {
	e := setupEnv(t)
	svc := newProjectService(e, nil)

	p, err := svc.Create(context.Background(), CreateProjectInput{Title: "Bare", SkipStarterTasks: true})
	require.NoError(t, err)
	assert.Empty(t, p.Tasks)
	assert.Equal(t, 300, p.TotalBudget, "budget survives with no tasks to split it across")
}

func TestProjectService_UpdateDetails_Partial(t *testing.T) {
	e := setupEnv(t)
	svc := newProjectService(e, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProjectInput{Title: "Old title", Client: "Old client"})
	require.NoError(t, err)

	newTitle := "New title"
	updated, err := svc.UpdateDetails(ctx, p.ID, ProjectDetails{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Old client", updated.Client, "unset fields stay untouched")
}

func TestProjectService_SetBudget_Redistributes(t *testing.T) {
	e := setupEnv(t)
	svc := newProjectService(e, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProjectInput{Title: "Rebudget"})
	require.NoError(t, err)

	updated, err := svc.SetBudget(ctx, p.ID, 500)
	require.NoError(t, err)
	assert.Equal(t, 500, updated.TotalBudget)
	assert.Equal(t, 250, updated.Tasks[0].Price)
	assert.Equal(t, 250, updated.Tasks[1].Price)
}

func TestProjectService_PauseAndResume(t *testing.T) {
	e := setupEnv(t)
	svc := newProjectService(e, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProjectInput{Title: "On hold"})
	require.NoError(t, err)

	paused, err := svc.Pause(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectPaused, paused.Status)

	resumed, err := svc.Resume(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectActive, resumed.Status)
}

func TestProjectService_CompleteAll_Notifies(t *testing.T) {
	e := setupEnv(t)
	notifier := &recordingNotifier{}
	svc := newProjectService(e, notifier)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProjectInput{Title: "Wrap up"})
	require.NoError(t, err)

	done, err := svc.CompleteAll(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectCompleted, done.Status)
	assert.Equal(t, done.TotalBudget, done.Earned)
	assert.Equal(t, 1, notifier.completedCount())

	// Completing an already complete project stays quiet.
	_, err = svc.CompleteAll(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.completedCount())
}

func TestProjectService_List_CompletedLast(t *testing.T) {
	e := setupEnv(t)
	svc := newProjectService(e, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateProjectInput{Title: "Done deal"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateProjectInput{Title: "In flight"})
	require.NoError(t, err)

	_, err = svc.CompleteAll(ctx, first.ID)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "In flight", all[0].Title)
	assert.Equal(t, "Done deal", all[1].Title)
}

func TestProjectService_Delete(t *testing.T) {
	e := setupEnv(t)
	svc := newProjectService(e, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProjectInput{Title: "Short lived"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err = svc.GetByID(ctx, p.ID)
	assert.Error(t, err)

	orphans, err := e.tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}
