package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matteobrandi/traccia/internal/budget"
	"github.com/matteobrandi/traccia/internal/db"
	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/notify"
	"github.com/matteobrandi/traccia/internal/repository"
)

// StarterTask describes one task seeded into every new project.
type StarterTask struct {
	Name  string
	Hours int
}

// Defaults holds the fallback values applied when a project is created
// without explicit ones.
type Defaults struct {
	Budget       int
	StarterTasks []StarterTask
}

// DefaultProjectDefaults returns the stock defaults for new projects.
func DefaultProjectDefaults() Defaults {
	return Defaults{
		Budget: 300,
		StarterTasks: []StarterTask{
			{Name: "Initial planning", Hours: 5},
			{Name: "Main development", Hours: 10},
		},
	}
}

type projectService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	defaults Defaults
	announcer
}

// NewProjectService creates the project use-case layer. A nil notifier
// silences notifications; a nil goal service skips goal sweeps.
func NewProjectService(projects repository.ProjectRepo, tasks repository.TaskRepo, uow db.UnitOfWork, defaults Defaults, notifier notify.Notifier, goalSvc GoalService) ProjectService {
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &projectService{
		projects:  projects,
		tasks:     tasks,
		uow:       uow,
		defaults:  defaults,
		announcer: announcer{notifier: notifier, goals: goalSvc},
	}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Client:      in.Client,
		Description: in.Description,
		Status:      domain.ProjectActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	total := s.defaults.Budget
	if in.Budget != nil {
		total = budget.ClampTotal(*in.Budget)
	}

	if !in.SkipStarterTasks {
		for _, st := range s.defaults.StarterTasks {
			p.Tasks = append(p.Tasks, domain.Task{
				ID:        uuid.New().String(),
				Name:      st.Name,
				Hours:     st.Hours,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}

	// Starter tasks carry no price of their own, so the budget is
	// split across them.
	p.SetTotalBudget(float64(total))

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, p); err != nil {
			return err
		}
		return repository.NewSQLiteTaskRepo(tx).ReplaceForProject(ctx, p.ID, p.Tasks)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return loadAggregate(ctx, s.projects, s.tasks, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		p.Tasks, err = s.tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Recalculate()
	}
	domain.SortForDisplay(all)
	return all, nil
}

func (s *projectService) UpdateDetails(ctx context.Context, id string, in ProjectDetails) (*domain.Project, error) {
	p, _, err := mutateProject(ctx, s.uow, id, func(p *domain.Project) (domain.StatusChange, error) {
		if in.Title != nil {
			p.Title = domain.CoalesceStr(*in.Title, p.Title)
		}
		if in.Client != nil {
			p.Client = domain.CoalesceStr(*in.Client, p.Client)
		}
		if in.Description != nil {
			p.Description = domain.CoalesceStr(*in.Description, p.Description)
		}
		return domain.StatusChange{}, nil
	})
	return p, err
}

func (s *projectService) SetBudget(ctx context.Context, id string, total float64) (*domain.Project, error) {
	p, change, err := mutateProject(ctx, s.uow, id, func(p *domain.Project) (domain.StatusChange, error) {
		return p.SetTotalBudget(total), nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.afterMutation(ctx, p, change); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Pause(ctx context.Context, id string) (*domain.Project, error) {
	p, _, err := mutateProject(ctx, s.uow, id, func(p *domain.Project) (domain.StatusChange, error) {
		p.Pause()
		return domain.StatusChange{}, nil
	})
	return p, err
}

func (s *projectService) Resume(ctx context.Context, id string) (*domain.Project, error) {
	p, change, err := mutateProject(ctx, s.uow, id, func(p *domain.Project) (domain.StatusChange, error) {
		return p.Resume(), nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.afterMutation(ctx, p, change); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) CompleteAll(ctx context.Context, id string) (*domain.Project, error) {
	p, change, err := mutateProject(ctx, s.uow, id, func(p *domain.Project) (domain.StatusChange, error) {
		return p.CompleteAll(), nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.afterMutation(ctx, p, change); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Import(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	change := p.Recalculate()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, p); err != nil {
			return err
		}
		return repository.NewSQLiteTaskRepo(tx).ReplaceForProject(ctx, p.ID, p.Tasks)
	})
	if err != nil {
		return nil, err
	}

	// Imported done tasks count as revenue and may cross a goal.
	if err := s.afterMutation(ctx, p, change); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	// Tasks go with the project via the FK cascade.
	return s.projects.Delete(ctx, id)
}
