package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteobrandi/traccia/internal/domain"
)

func testLadder() []domain.Goal {
	return []domain.Goal{
		{ID: "first-milestone", Name: "First milestone", Target: 1000, Ordinal: 1},
		{ID: "liftoff", Name: "Liftoff", Target: 3000, Ordinal: 2},
	}
}

// earn creates a completed project worth the given amount.
func earn(t *testing.T, e *env, amount float64) {
	t.Helper()
	projects := newProjectService(e, nil)
	ctx := context.Background()

	p, err := projects.Create(ctx, CreateProjectInput{Title: "Paid work", Budget: &amount})
	require.NoError(t, err)
	_, err = projects.CompleteAll(ctx, p.ID)
	require.NoError(t, err)
}

func TestGoalService_Overview(t *testing.T) {
	e := setupEnv(t)
	svc := NewGoalService(e.projects, e.tasks, e.awards, testLadder(), nil)
	earn(t, e, 1500)

	statuses, revenue, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500, revenue)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Achieved)
	assert.False(t, statuses[1].Achieved)
	assert.Equal(t, 1500, statuses[1].Remaining)
}

func TestGoalService_NextActive(t *testing.T) {
	e := setupEnv(t)
	svc := NewGoalService(e.projects, e.tasks, e.awards, testLadder(), nil)
	earn(t, e, 1500)

	next, err := svc.NextActive(context.Background())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "liftoff", next.ID)
}

func TestGoalService_Sweep_FiresOnce(t *testing.T) {
	e := setupEnv(t)
	notifier := &recordingNotifier{}
	svc := NewGoalService(e.projects, e.tasks, e.awards, testLadder(), notifier)
	ctx := context.Background()

	earn(t, e, 1500)

	crossed, err := svc.Sweep(ctx)
	require.NoError(t, err)
	require.Len(t, crossed, 1)
	assert.Equal(t, "first-milestone", crossed[0].ID)
	assert.Equal(t, []string{"first-milestone"}, notifier.achievedGoals())

	// A second sweep over the same revenue stays silent.
	crossed, err = svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Empty(t, crossed)
	assert.Equal(t, []string{"first-milestone"}, notifier.achievedGoals())
}

func TestGoalService_Sweep_OnceEverAcrossRestarts(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	first := NewGoalService(e.projects, e.tasks, e.awards, testLadder(), nil)
	earn(t, e, 1500)
	_, err := first.Sweep(ctx)
	require.NoError(t, err)

	// A fresh service instance sees the persisted award.
	notifier := &recordingNotifier{}
	second := NewGoalService(e.projects, e.tasks, e.awards, testLadder(), notifier)
	crossed, err := second.Sweep(ctx)
	require.NoError(t, err)
	assert.Empty(t, crossed)
	assert.Empty(t, notifier.achievedGoals())
}

func TestGoalService_Sweep_MultipleCrossings(t *testing.T) {
	e := setupEnv(t)
	notifier := &recordingNotifier{}
	svc := NewGoalService(e.projects, e.tasks, e.awards, testLadder(), notifier)

	earn(t, e, 5000)

	crossed, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, crossed, 2)
	assert.Equal(t, []string{"first-milestone", "liftoff"}, notifier.achievedGoals())
}

func TestGoalService_EmptyLadderFallsBackToDefaults(t *testing.T) {
	e := setupEnv(t)
	svc := NewGoalService(e.projects, e.tasks, e.awards, nil, nil)

	ladder := svc.Ladder()
	require.Len(t, ladder, 5)
	assert.Equal(t, 1000, ladder[0].Target)
	assert.Equal(t, 20000, ladder[4].Target)
}
