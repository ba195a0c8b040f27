package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/matteobrandi/traccia/internal/domain"
)

// resolveProjectID resolves a project identifier which can be a full
// UUID or a unique UUID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTaskID resolves a task identifier within a project. It accepts
// the 1-based position shown by "project inspect", a full task UUID, or
// a unique UUID prefix.
func resolveTaskID(p *domain.Project, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	if pos, err := strconv.Atoi(input); err == nil {
		if pos < 1 || pos > len(p.Tasks) {
			return "", fmt.Errorf("task #%d not found (project has %d tasks)", pos, len(p.Tasks))
		}
		return p.Tasks[pos-1].ID, nil
	}

	for _, t := range p.Tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range p.Tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
