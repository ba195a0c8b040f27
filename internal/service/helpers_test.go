package service

import (
	"sync"
	"testing"

	"github.com/matteobrandi/traccia/internal/db"
	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/notify"
	"github.com/matteobrandi/traccia/internal/repository"
	"github.com/matteobrandi/traccia/internal/testutil"
)

type env struct {
	projects *repository.SQLiteProjectRepo
	tasks    *repository.SQLiteTaskRepo
	awards   *repository.SQLiteGoalAwardRepo
	uow      db.UnitOfWork
}

func setupEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &env{
		projects: repository.NewSQLiteProjectRepo(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		awards:   repository.NewSQLiteGoalAwardRepo(database),
		uow:      db.NewSQLiteUnitOfWork(database),
	}
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	completed []string
	achieved  []string
}

func (n *recordingNotifier) ProjectCompleted(p *domain.Project) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.completed = append(n.completed, p.ID)
}

func (n *recordingNotifier) GoalAchieved(g domain.Goal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.achieved = append(n.achieved, g.ID)
}

func (n *recordingNotifier) completedCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.completed)
}

func (n *recordingNotifier) achievedGoals() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.achieved))
	copy(out, n.achieved)
	return out
}

// newProjectService wires a ProjectService with stock defaults and the
// given notifier, without goal sweeping.
func newProjectService(e *env, notifier notify.Notifier) ProjectService {
	return NewProjectService(e.projects, e.tasks, e.uow, DefaultProjectDefaults(), notifier, nil)
}

func newTaskService(e *env, notifier notify.Notifier) TaskService {
	return NewTaskService(e.uow, notifier, nil)
}
