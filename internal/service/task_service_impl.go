package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matteobrandi/traccia/internal/budget"
	"github.com/matteobrandi/traccia/internal/db"
	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/notify"
)

type taskService struct {
	uow db.UnitOfWork
	announcer
}

// NewTaskService creates the task use-case layer.
func NewTaskService(uow db.UnitOfWork, notifier notify.Notifier, goalSvc GoalService) TaskService {
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &taskService{
		uow:       uow,
		announcer: announcer{notifier: notifier, goals: goalSvc},
	}
}

func (s *taskService) Add(ctx context.Context, projectID string, in AddTaskInput) (*domain.Project, error) {
	now := time.Now().UTC()
	task := domain.Task{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     budget.ClampTotal(in.Price),
		Hours:     budget.ClampTotal(in.Hours),
		CreatedAt: now,
		UpdatedAt: now,
	}

	p, change, err := mutateProject(ctx, s.uow, projectID, func(p *domain.Project) (domain.StatusChange, error) {
		return p.AddTask(task), nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.afterMutation(ctx, p, change); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *taskService) Toggle(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
	return s.mutateTask(ctx, projectID, taskID, func(p *domain.Project) (bool, domain.StatusChange) {
		return p.ToggleTask(taskID)
	})
}

func (s *taskService) Rename(ctx context.Context, projectID, taskID, name string) (*domain.Project, error) {
	return s.mutateTask(ctx, projectID, taskID, func(p *domain.Project) (bool, domain.StatusChange) {
		return p.RenameTask(taskID, name), domain.StatusChange{}
	})
}

func (s *taskService) EditPrice(ctx context.Context, projectID, taskID string, price float64) (*domain.Project, error) {
	return s.mutateTask(ctx, projectID, taskID, func(p *domain.Project) (bool, domain.StatusChange) {
		return p.EditTaskPrice(taskID, price)
	})
}

func (s *taskService) EditHours(ctx context.Context, projectID, taskID string, hours float64) (*domain.Project, error) {
	return s.mutateTask(ctx, projectID, taskID, func(p *domain.Project) (bool, domain.StatusChange) {
		return p.EditTaskHours(taskID, hours), domain.StatusChange{}
	})
}

func (s *taskService) Remove(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
	return s.mutateTask(ctx, projectID, taskID, func(p *domain.Project) (bool, domain.StatusChange) {
		return p.RemoveTask(taskID)
	})
}

func (s *taskService) mutateTask(ctx context.Context, projectID, taskID string, fn func(p *domain.Project) (bool, domain.StatusChange)) (*domain.Project, error) {
	p, change, err := mutateProject(ctx, s.uow, projectID, func(p *domain.Project) (domain.StatusChange, error) {
		ok, change := fn(p)
		if !ok {
			return domain.StatusChange{}, fmt.Errorf("task %s: %w", taskID, ErrTaskNotFound)
		}
		return change, nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.afterMutation(ctx, p, change); err != nil {
		return nil, err
	}
	return p, nil
}
