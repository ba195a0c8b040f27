package service

import (
	"context"

	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/repository"
)

type statsService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
}

// NewStatsService creates the portfolio statistics layer.
func NewStatsService(projects repository.ProjectRepo, tasks repository.TaskRepo) StatsService {
	return &statsService{projects: projects, tasks: tasks}
}

func (s *statsService) Snapshot(ctx context.Context) (*Stats, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{ProjectCount: len(all)}
	budgetSum := 0

	for _, p := range all {
		p.Tasks, err = s.tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Recalculate()

		stats.TotalRevenue += p.Earned
		budgetSum += p.TotalBudget
		stats.TaskCount += len(p.Tasks)
		for _, t := range p.Tasks {
			if t.Completed {
				stats.CompletedTaskCount++
			}
		}

		switch p.Status {
		case domain.ProjectActive:
			stats.ActiveCount++
		case domain.ProjectCompleted:
			stats.CompletedCount++
		case domain.ProjectPaused:
			stats.PausedCount++
		}
	}

	if stats.ProjectCount > 0 {
		stats.AvgProjectValue = float64(budgetSum) / float64(stats.ProjectCount)
	}
	if stats.TaskCount > 0 {
		stats.TaskCompletionRate = float64(stats.CompletedTaskCount) / float64(stats.TaskCount) * 100
	}
	return stats, nil
}
