package service

import (
	"context"
	"fmt"
	"time"

	"github.com/matteobrandi/traccia/internal/db"
	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/notify"
	"github.com/matteobrandi/traccia/internal/repository"
)

// loadAggregate fetches a project with its tasks and runs a derivation
// pass so the caller always sees consistent earned and status fields.
func loadAggregate(ctx context.Context, projects repository.ProjectRepo, tasks repository.TaskRepo, id string) (*domain.Project, error) {
	p, err := projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Tasks, err = tasks.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Recalculate()
	return p, nil
}

// mutateProject runs fn against a freshly loaded aggregate inside a
// transaction, then writes the project row and the full task list back.
// The returned StatusChange reflects any automatic status transition.
func mutateProject(ctx context.Context, uow db.UnitOfWork, id string, fn func(p *domain.Project) (domain.StatusChange, error)) (*domain.Project, domain.StatusChange, error) {
	var (
		out    *domain.Project
		change domain.StatusChange
	)
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		p, err := loadAggregate(ctx, txProjects, txTasks, id)
		if err != nil {
			return err
		}

		change, err = fn(p)
		if err != nil {
			return err
		}

		p.UpdatedAt = time.Now().UTC()
		if err := txProjects.Update(ctx, p); err != nil {
			return err
		}
		if err := txTasks.ReplaceForProject(ctx, p.ID, p.Tasks); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, domain.StatusChange{}, err
	}
	return out, change, nil
}

// announcer fires user-facing notifications after a successful mutation
// and sweeps the goal ladder, since any earned change may cross a goal.
type announcer struct {
	notifier notify.Notifier
	goals    GoalService
}

func (a announcer) afterMutation(ctx context.Context, p *domain.Project, change domain.StatusChange) error {
	if change.CompletedNow {
		a.notifier.ProjectCompleted(p)
	}
	if a.goals != nil {
		if _, err := a.goals.Sweep(ctx); err != nil {
			return fmt.Errorf("sweeping goals: %w", err)
		}
	}
	return nil
}

// portfolioRevenue sums earned value across every project.
func portfolioRevenue(ctx context.Context, projects repository.ProjectRepo, tasks repository.TaskRepo) (int, error) {
	all, err := projects.List(ctx)
	if err != nil {
		return 0, err
	}
	revenue := 0
	for _, p := range all {
		p.Tasks, err = tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return 0, err
		}
		p.Recalculate()
		revenue += p.Earned
	}
	return revenue, nil
}
