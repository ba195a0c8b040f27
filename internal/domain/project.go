package domain

import (
	"sort"
	"time"

	"github.com/matteobrandi/traccia/internal/budget"
)

// Project is the aggregate owning a task list and the derived fields
// computed from it. Every mutation below ends with a derivation pass
// (Recalculate) so Earned, CompletionPct and Status are never stale.
//
// Invariant: whenever Tasks is non-empty, TotalBudget equals the sum of
// the task prices. With no tasks, TotalBudget keeps the last explicitly
// entered value.
type Project struct {
	ID          string
	Title       string
	Client      string
	Description string
	TotalBudget int
	Status      ProjectStatus
	Tasks       []Task

	// Derived
	Earned        int
	CompletionPct float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusChange reports the automatic status transitions produced by a
// derivation pass, so callers can fire celebration events exactly once
// per entry into the completed state.
type StatusChange struct {
	CompletedNow bool
	ReopenedNow  bool
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// Recalculate runs the derivation pass: earned amount, completion
// percentage and the automatic status machine. Any state moves to
// completed when a non-empty task list reaches 100%; completed reverts
// to active when completion drops below 100%. Paused is untouched
// unless the list is fully complete.
func (p *Project) Recalculate() StatusChange {
	completed := 0
	earned := 0
	for _, t := range p.Tasks {
		if t.Completed {
			completed++
			earned += t.Price
		}
	}
	p.Earned = earned

	if len(p.Tasks) == 0 {
		p.CompletionPct = 0
	} else {
		p.CompletionPct = float64(completed) / float64(len(p.Tasks)) * 100
	}

	var change StatusChange
	switch {
	case len(p.Tasks) > 0 && completed == len(p.Tasks):
		if p.Status != ProjectCompleted {
			p.Status = ProjectCompleted
			change.CompletedNow = true
		}
	case p.Status == ProjectCompleted:
		p.Status = ProjectActive
		change.ReopenedNow = true
	}
	return change
}

// redistribute pushes the current total down onto the task prices.
func (p *Project) redistribute(total int) {
	prices := budget.Redistribute(total, len(p.Tasks))
	for i := range p.Tasks {
		p.Tasks[i].Price = prices[i]
	}
	p.TotalBudget = budget.Reconcile(prices)
}

// reconcile pulls the total up from the task prices.
func (p *Project) reconcile() {
	prices := make([]int, len(p.Tasks))
	for i, t := range p.Tasks {
		prices[i] = t.Price
	}
	p.TotalBudget = budget.Reconcile(prices)
}

/// SetTotalBudget applies a budget edit: the raw input is clamped and
// rounded, the tasks are redistributed against it, and the total is
// forced back to the redistributed sum.
func (p *Project) SetTotalBudget(v float64) StatusChange {
	total := budget.ClampTotal(v)
	if len(p.Tasks) == 0 {
		p.TotalBudget = total
		return p.Recalculate()
	}
	p.redistribute(total)
	return p.Recalculate()
}

// AddTask prepends a task. An explicit price is authoritative and the
// total follows the new sum; a zero price with a positive budget folds
// the task into the existing budget via redistribution.
func (p *Project) AddTask(t Task) StatusChange {
	if t.Price < 0 {
		t.Price = 0
	}
	if t.Hours < 0 {
		t.Hours = 0
	}
	preTotal := p.TotalBudget
	p.Tasks = append([]Task{t}, p.Tasks...)
	p.renumber()

	if t.Price == 0 && preTotal > 0 {
		p.redistribute(preTotal)
	} else {
		p.reconcile()
	}
	return p.Recalculate()
}

// RemoveTask deletes a task by ID and redistributes the remaining tasks
// against the pre-removal total. Removing the last task zeroes the
// budget. The bool reports whether the ID was found.
func (p *Project) RemoveTask(id string) (bool, StatusChange) {
	preTotal := p.TotalBudget
	idx := p.taskIndex(id)
	if idx < 0 {
		return false, StatusChange{}
	}
	p.Tasks = append(p.Tasks[:idx], p.Tasks[idx+1:]...)
	p.renumber()

	if len(p.Tasks) == 0 {
		p.TotalBudget = 0
	} else {
		p.redistribute(preTotal)
	}
	change := p.Recalculate()
	return true, change
}

// EditTaskPrice sets one task's price directly; the edited price is
// authoritative, so only the total is reconciled — siblings keep theirs.
func (p *Project) EditTaskPrice(id string, v float64) (bool, StatusChange) {
	idx := p.taskIndex(id)
	if idx < 0 {
		return false, StatusChange{}
	}
	price := budget.RoundAmount(v)
	if price < 0 {
		price = 0
	}
	p.Tasks[idx].Price = price
	p.reconcile()
	change := p.Recalculate()
	return true, change
}

// EditTaskHours updates the informational hours estimate. No effect on
// any price or on the total.
func (p *Project) EditTaskHours(id string, v float64) bool {
	idx := p.taskIndex(id)
	if idx < 0 {
		return false
	}
	hours := budget.RoundAmount(v)
	if hours < 0 {
		hours = 0
	}
	p.Tasks[idx].Hours = hours
	return true
}

// RenameTask updates a task's label.
func (p *Project) RenameTask(id, name string) bool {
	idx := p.taskIndex(id)
	if idx < 0 {
		return false
	}
	p.Tasks[idx].Name = name
	return true
}

// ToggleTask flips a task's completion flag.
func (p *Project) ToggleTask(id string) (bool, StatusChange) {
	idx := p.taskIndex(id)
	if idx < 0 {
		return false, StatusChange{}
	}
	p.Tasks[idx].Completed = !p.Tasks[idx].Completed
	change := p.Recalculate()
	return true, change
}

// CompleteAll marks every task completed in one pass.
func (p *Project) CompleteAll() StatusChange {
	for i := range p.Tasks {
		p.Tasks[i].Completed = true
	}
	return p.Recalculate()
}

// Pause tags the project as paused. Manual only — nothing in the
// automatic machine enters or exits this state on its own.
func (p *Project) Pause() {
	if p.Status != ProjectCompleted {
		p.Status = ProjectPaused
	}
}

// Resume re-activates a paused project and re-runs derivation, so a
// fully-complete task list lands straight back on completed.
func (p *Project) Resume() StatusChange {
	if p.Status == ProjectPaused {
		p.Status = ProjectActive
	}
	return p.Recalculate()
}

// Replace swaps the whole draft state in atomically: title, client,
// description, budget and task list. An explicit task price makes the
// price list authoritative; an all-unpriced list against a positive
// budget shares it out, like a zero-price manual entry would. With no
// tasks the supplied budget stands alone.
func (p *Project) Replace(title, client, description string, total int, tasks []Task) StatusChange {
	p.Title = title
	p.Client = client
	p.Description = description
	p.Tasks = tasks
	p.renumber()
	if total < 0 {
		total = 0
	}
	switch {
	case len(p.Tasks) == 0:
		p.TotalBudget = total
	case p.anyPriced() || total == 0:
		p.reconcile()
	default:
		p.redistribute(total)
	}
	return p.Recalculate()
}

func (p *Project) anyPriced() bool {
	for _, t := range p.Tasks {
		if t.Price != 0 {
			return true
		}
	}
	return false
}

func (p *Project) taskIndex(id string) int {
	for i, t := range p.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (p *Project) renumber() {
	for i := range p.Tasks {
		p.Tasks[i].Position = i
		p.Tasks[i].ProjectID = p.ID
	}
}

// SortForDisplay orders projects the way the dashboard lists them:
// completed projects sink to the bottom, everything else sorts by most
// recent creation first.
func SortForDisplay(projects []*Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if (a.Status == ProjectCompleted) != (b.Status == ProjectCompleted) {
			return a.Status != ProjectCompleted
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
