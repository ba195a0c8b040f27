package repository

import (
	"context"
	"time"

	"github.com/matteobrandi/traccia/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	// ReplaceForProject deletes every task row of the project and
	// inserts the given list. Redistribution rewrites all prices at
	// once, so the whole list is always written together.
	ReplaceForProject(ctx context.Context, projectID string, tasks []domain.Task) error
	Delete(ctx context.Context, id string) error
}

type GoalAwardRepo interface {
	// Record marks a goal as awarded. Recording the same goal twice is
	// a silent no-op so award emission stays once-ever.
	Record(ctx context.Context, goalID string, at time.Time) error
	ListAwarded(ctx context.Context) ([]string, error)
}
