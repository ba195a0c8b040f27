package service

import (
	"context"
	"errors"

	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/goals"
	"github.com/matteobrandi/traccia/internal/ingest"
)

// ErrTaskNotFound is returned when a task id does not exist within the
// addressed project.
var ErrTaskNotFound = errors.New("task not found in project")

// CreateProjectInput carries the fields for a new project. A nil Budget
// falls back to the configured default, and unless SkipStarterTasks is
// set the project is seeded with the configured starter tasks.
type CreateProjectInput struct {
	Title            string
	Client           string
	Description      string
	Budget           *float64
	SkipStarterTasks bool
}

// ProjectDetails carries a partial update of a project's descriptive
// fields. Nil pointers leave the current value untouched.
type ProjectDetails struct {
	Title       *string
	Client      *string
	Description *string
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	UpdateDetails(ctx context.Context, id string, in ProjectDetails) (*domain.Project, error)
	SetBudget(ctx context.Context, id string, total float64) (*domain.Project, error)
	Pause(ctx context.Context, id string) (*domain.Project, error)
	Resume(ctx context.Context, id string) (*domain.Project, error)
	CompleteAll(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error

	// Import persists a fully-built aggregate, such as one converted
	// from a transfer file, and announces any goals it crosses.
	Import(ctx context.Context, p *domain.Project) (*domain.Project, error)
}

// AddTaskInput carries the fields for a new task. A zero price on a
// project with a positive budget makes the task join the allocation;
// an explicit price grows the budget instead.
type AddTaskInput struct {
	Name  string
	Price float64
	Hours float64
}

type TaskService interface {
	Add(ctx context.Context, projectID string, in AddTaskInput) (*domain.Project, error)
	Toggle(ctx context.Context, projectID, taskID string) (*domain.Project, error)
	Rename(ctx context.Context, projectID, taskID, name string) (*domain.Project, error)
	EditPrice(ctx context.Context, projectID, taskID string, price float64) (*domain.Project, error)
	EditHours(ctx context.Context, projectID, taskID string, hours float64) (*domain.Project, error)
	Remove(ctx context.Context, projectID, taskID string) (*domain.Project, error)
}

type GoalService interface {
	// Ladder returns the configured goal ladder sorted by target.
	Ladder() []domain.Goal

	// Overview evaluates every goal against current revenue.
	Overview(ctx context.Context) ([]goals.Status, int, error)

	// NextActive returns the lowest unachieved goal, or nil when the
	// whole ladder has been climbed.
	NextActive(ctx context.Context) (*domain.Goal, error)

	// Sweep records and announces any goals newly crossed by the
	// current revenue. Each goal is announced at most once, ever.
	Sweep(ctx context.Context) ([]domain.Goal, error)
}

// Stats is a snapshot of the whole portfolio.
type Stats struct {
	TotalRevenue       int
	ProjectCount       int
	ActiveCount        int
	CompletedCount     int
	PausedCount        int
	TaskCount          int
	CompletedTaskCount int
	AvgProjectValue    float64
	TaskCompletionRate float64 // percent of tasks completed across all projects
}

type StatsService interface {
	Snapshot(ctx context.Context) (*Stats, error)
}

type DraftService interface {
	// Draft produces a reviewable project draft from a free-form brief.
	Draft(ctx context.Context, brief string) (*ingest.ProjectDraft, error)

	// CreateFromDraft persists an accepted draft as a real project.
	CreateFromDraft(ctx context.Context, d *ingest.ProjectDraft) (*domain.Project, error)
}
