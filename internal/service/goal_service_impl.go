package service

import (
	"context"
	"sort"
	"time"

	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/goals"
	"github.com/matteobrandi/traccia/internal/notify"
	"github.com/matteobrandi/traccia/internal/repository"
)

type goalService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	awards   repository.GoalAwardRepo
	ladder   []domain.Goal
	notifier notify.Notifier
}

// NewGoalService creates the revenue-goal use-case layer. An empty
// ladder falls back to the default one.
func NewGoalService(projects repository.ProjectRepo, tasks repository.TaskRepo, awards repository.GoalAwardRepo, ladder []domain.Goal, notifier notify.Notifier) GoalService {
	if len(ladder) == 0 {
		ladder = domain.DefaultGoals()
	}
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	sorted := make([]domain.Goal, len(ladder))
	copy(sorted, ladder)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Target < sorted[j].Target })
	return &goalService{
		projects: projects,
		tasks:    tasks,
		awards:   awards,
		ladder:   sorted,
		notifier: notifier,
	}
}

func (s *goalService) Ladder() []domain.Goal {
	out := make([]domain.Goal, len(s.ladder))
	copy(out, s.ladder)
	return out
}

func (s *goalService) Overview(ctx context.Context) ([]goals.Status, int, error) {
	revenue, err := portfolioRevenue(ctx, s.projects, s.tasks)
	if err != nil {
		return nil, 0, err
	}
	return goals.Evaluate(s.ladder, revenue), revenue, nil
}

func (s *goalService) NextActive(ctx context.Context) (*domain.Goal, error) {
	revenue, err := portfolioRevenue(ctx, s.projects, s.tasks)
	if err != nil {
		return nil, err
	}
	return goals.NextActive(s.ladder, revenue), nil
}

func (s *goalService) Sweep(ctx context.Context) ([]domain.Goal, error) {
	revenue, err := portfolioRevenue(ctx, s.projects, s.tasks)
	if err != nil {
		return nil, err
	}
	seen, err := s.awards.ListAwarded(ctx)
	if err != nil {
		return nil, err
	}

	tracker := goals.NewTracker(s.ladder, seen)
	crossed := tracker.Advance(revenue)

	now := time.Now().UTC()
	for _, g := range crossed {
		if err := s.awards.Record(ctx, g.ID, now); err != nil {
			return nil, err
		}
		s.notifier.GoalAchieved(g)
	}
	return crossed, nil
}
