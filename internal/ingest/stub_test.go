package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubSource_ReturnsValidDraft(t *testing.T) {
	src := &StubSource{Delay: 0}

	draft, err := src.Draft(context.Background(), "logo for a bakery")
	require.NoError(t, err)
	require.NoError(t, ValidateDraft(*draft))

	assert.Equal(t, "logo for a bakery", draft.Title)
	assert.Equal(t, 550, draft.Budget)
	require.Len(t, draft.Tasks, 2)

	sum := 0
	for _, task := range draft.Tasks {
		sum += task.Price
	}
	assert.Equal(t, draft.Budget, sum, "task prices should sum to the budget")
}

func TestStubSource_EmptyBriefGetsDefaultTitle(t *testing.T) {
	src := &StubSource{Delay: 0}

	draft, err := src.Draft(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "New project", draft.Title)
}

func TestStubSource_TruncatesLongTitle(t *testing.T) {
	src := &StubSource{Delay: 0}

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	draft, err := src.Draft(context.Background(), string(long))
	require.NoError(t, err)
	assert.Len(t, draft.Title, 60)
}

func TestStubSource_HonorsContextCancellation(t *testing.T) {
	src := &StubSource{Delay: 5 * time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := src.Draft(ctx, "anything")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestValidateDraft(t *testing.T) {
	valid := ProjectDraft{
		Title:  "Logo",
		Budget: 100,
		Tasks:  []DraftTask{{Name: "Sketches", Price: 100, Hours: 4}},
	}
	assert.NoError(t, ValidateDraft(valid))

	tests := []struct {
		name   string
		mutate func(*ProjectDraft)
	}{
		{"missing title", func(d *ProjectDraft) { d.Title = "  " }},
		{"negative budget", func(d *ProjectDraft) { d.Budget = -1 }},
		{"unnamed task", func(d *ProjectDraft) { d.Tasks[0].Name = "" }},
		{"negative price", func(d *ProjectDraft) { d.Tasks[0].Price = -10 }},
		{"negative hours", func(d *ProjectDraft) { d.Tasks[0].Hours = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			d.Tasks = []DraftTask{valid.Tasks[0]}
			tc.mutate(&d)
			assert.Error(t, ValidateDraft(d))
		})
	}
}
