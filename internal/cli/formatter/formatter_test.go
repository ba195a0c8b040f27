package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/goals"
	"github.com/matteobrandi/traccia/internal/service"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "€0", Money(0))
	assert.Equal(t, "€300", Money(300))
	assert.Equal(t, "€1,000", Money(1000))
	assert.Equal(t, "€12,500", Money(12500))
	assert.Equal(t, "€1,234,567", Money(1234567))
	assert.Equal(t, "€-550", Money(-550))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "abcdef12", TruncID("abcdef12-3456-7890-abcd-ef1234567890"))
	assert.Equal(t, "short", TruncID("short"))
}

func TestRenderProgress_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
	}{
		{"zero", 0.0, 10},
		{"half", 0.5, 10},
		{"full", 1.0, 10},
		{"over full clamps", 1.5, 10},
		{"negative clamps", -0.5, 10},
		{"tiny width clamps to 2", 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "%")
		})
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{
		{"x", "y"},
		{"wide cell", "z"},
	})
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "wide cell")
	assert.Contains(t, out, "─")
}

func TestFormatProjectList(t *testing.T) {
	now := time.Now().UTC()
	projects := []*domain.Project{
		{
			ID:          "abcdef12-3456-7890-abcd-ef1234567890",
			Title:       "Bakery website",
			Client:      "Forno Rossi",
			TotalBudget: 1200,
			Earned:      400,
			Status:      domain.ProjectActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	out := FormatProjectList(projects)
	assert.Contains(t, out, "abcdef12")
	assert.Contains(t, out, "Bakery website")
	assert.Contains(t, out, "Forno Rossi")
	assert.Contains(t, out, "€1,200")
	assert.Contains(t, out, "€400")
}

func TestFormatProjectInspect_ShowsTasks(t *testing.T) {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:          "abcdef12-3456-7890-abcd-ef1234567890",
		Title:       "Bakery website",
		TotalBudget: 300,
		Status:      domain.ProjectActive,
		CreatedAt:   now,
		Tasks: []domain.Task{
			{Name: "Initial planning", Price: 150, Hours: 5, Completed: true},
			{Name: "Main development", Price: 150, Hours: 10},
		},
	}
	p.Recalculate()

	out := FormatProjectInspect(p)
	assert.Contains(t, out, "Initial planning")
	assert.Contains(t, out, "Main development")
	assert.Contains(t, out, "€150")
	assert.Contains(t, out, "5h")
}

func TestFormatProjectInspect_NoTasks(t *testing.T) {
	p := &domain.Project{ID: "id", Title: "Empty", Status: domain.ProjectActive}
	out := FormatProjectInspect(p)
	assert.Contains(t, out, "No tasks yet.")
}

func TestFormatGoalLadder(t *testing.T) {
	statuses := []goals.Status{
		{Goal: domain.Goal{ID: "first-milestone", Name: "First milestone", Target: 1000}, Achieved: true, Progress: 1},
		{Goal: domain.Goal{ID: "liftoff", Name: "Liftoff", Target: 3000}, Achieved: false, Progress: 0.5, Remaining: 1500},
	}

	out := FormatGoalLadder(statuses, 1500)
	assert.Contains(t, out, "First milestone")
	assert.Contains(t, out, "Liftoff")
	assert.Contains(t, out, "€1,500 to go")
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(&service.Stats{
		TotalRevenue:       2500,
		ActiveCount:        2,
		CompletedCount:     1,
		TaskCount:          9,
		CompletedTaskCount: 3,
		AvgProjectValue:    833.33,
		TaskCompletionRate: 33.3,
	})
	assert.Contains(t, out, "€2,500")
	assert.Contains(t, out, "2 active")
	assert.Contains(t, out, "3/9 done")
}
