package domain

import "time"

// Task is a priced, optionally-completed unit of work within a project.
// Price and Hours are whole currency units and whole hours; fractional
// input is rounded at the boundary before a Task is ever constructed.
// Hours is informational only and never participates in budget math.
type Task struct {
	ID        string
	ProjectID string
	Name      string
	Price     int
	Hours     int
	Completed bool
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
