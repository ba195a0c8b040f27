package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/matteobrandi/traccia/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithClient(client string) ProjectOption {
	return func(p *domain.Project) {
		p.Client = client
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithCreatedAt(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.CreatedAt = t
		p.UpdatedAt = t
	}
}

// WithTasks attaches tasks and runs a derivation pass so the fixture's
// totals are already consistent.
func WithTasks(tasks ...domain.Task) ProjectOption {
	return func(p *domain.Project) {
		p.Tasks = tasks
		sum := 0
		for i := range p.Tasks {
			p.Tasks[i].ProjectID = p.ID
			p.Tasks[i].Position = i
			sum += p.Tasks[i].Price
		}
		p.TotalBudget = sum
		p.Recalculate()
	}
}

func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Title:     title,
		Client:    "Test Client",
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithPrice(price int) TaskOption {
	return func(t *domain.Task) {
		t.Price = price
	}
}

func WithHours(hours int) TaskOption {
	return func(t *domain.Task) {
		t.Hours = hours
	}
}

func Completed() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func NewTestTask(name string, opts ...TaskOption) domain.Task {
	now := time.Now().UTC()
	t := domain.Task{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
