package ingest

import (
	"context"
	"fmt"
	"strings"
)

// DraftTask is one suggested task inside a project draft.
type DraftTask struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Hours int    `json:"hours"`
}

// ProjectDraft is a machine-suggested starting point for a new project.
// The caller reviews it before anything is persisted.
type ProjectDraft struct {
	Title       string      `json:"title"`
	Client      string      `json:"client"`
	Description string      `json:"description"`
	Budget      int         `json:"budget"`
	Tasks       []DraftTask `json:"tasks"`
}

// DraftSource produces a project draft from a free-form brief.
type DraftSource interface {
	Draft(ctx context.Context, brief string) (*ProjectDraft, error)
}

// ValidateDraft checks that a draft is usable before it is offered to
// the user.
func ValidateDraft(d ProjectDraft) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("draft has no title")
	}
	if d.Budget < 0 {
		return fmt.Errorf("draft budget is negative: %d", d.Budget)
	}
	for i, t := range d.Tasks {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("draft task %d has no name", i)
		}
		if t.Price < 0 {
			return fmt.Errorf("draft task %q has negative price: %d", t.Name, t.Price)
		}
		if t.Hours < 0 {
			return fmt.Errorf("draft task %q has negative hours: %d", t.Name, t.Hours)
		}
	}
	return nil
}
