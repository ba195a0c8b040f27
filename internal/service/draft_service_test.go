package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/ingest"
)

func TestDraftService_DraftFromStub(t *testing.T) {
	e := setupEnv(t)
	svc := NewDraftService(&ingest.StubSource{Delay: 0}, e.uow)

	draft, err := svc.Draft(context.Background(), "logo for a bakery")
	require.NoError(t, err)
	assert.Equal(t, 550, draft.Budget)
	assert.Len(t, draft.Tasks, 2)
}

func TestDraftService_CreateFromDraft(t *testing.T) {
	e := setupEnv(t)
	svc := NewDraftService(&ingest.StubSource{Delay: 0}, e.uow)
	ctx := context.Background()

	draft := &ingest.ProjectDraft{
		Title:       "Bakery logo",
		Client:      "Forno Rossi",
		Description: "Logo and brand mark.",
		Budget:      500,
		Tasks: []ingest.DraftTask{
			{Name: "Moodboard", Price: 150, Hours: 4},
			{Name: "Final design", Price: 400, Hours: 10},
		},
	}

	p, err := svc.CreateFromDraft(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "Bakery logo", p.Title)
	assert.Equal(t, domain.ProjectActive, p.Status)
	assert.Equal(t, 550, p.TotalBudget, "task prices win over the drafted total")
	require.Len(t, p.Tasks, 2)

	// Persisted and loadable.
	fetched, err := loadAggregate(ctx, e.projects, e.tasks, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 550, fetched.TotalBudget)
	assert.Equal(t, "Moodboard", fetched.Tasks[0].Name)
}

func TestDraftService_CreateFromDraft_UnpricedTasksShareBudget(t *testing.T) {
	e := setupEnv(t)
	svc := NewDraftService(&ingest.StubSource{Delay: 0}, e.uow)
	ctx := context.Background()

	draft := &ingest.ProjectDraft{
		Title:  "Bakery website",
		Budget: 550,
		Tasks: []ingest.DraftTask{
			{Name: "Wireframes", Hours: 6},
			{Name: "Build", Hours: 20},
		},
	}

	p, err := svc.CreateFromDraft(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, 550, p.TotalBudget, "unpriced tasks share the drafted budget")
	require.Len(t, p.Tasks, 2)
	assert.Equal(t, 275, p.Tasks[0].Price)
	assert.Equal(t, 275, p.Tasks[1].Price)

	fetched, err := loadAggregate(ctx, e.projects, e.tasks, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 550, fetched.TotalBudget)
}

func TestDraftService_CreateFromDraft_NoTasksKeepsDraftBudget(t *testing.T) {
	e := setupEnv(t)
	svc := NewDraftService(&ingest.StubSource{Delay: 0}, e.uow)

	draft := &ingest.ProjectDraft{Title: "Retainer", Budget: 800}
	p, err := svc.CreateFromDraft(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, 800, p.TotalBudget)
	assert.Empty(t, p.Tasks)
}

func TestDraftService_RejectsInvalidDraft(t *testing.T) {
	e := setupEnv(t)
	svc := NewDraftService(&ingest.StubSource{Delay: 0}, e.uow)

	_, err := svc.CreateFromDraft(context.Background(), &ingest.ProjectDraft{Budget: 100})
	assert.Error(t, err)
}
