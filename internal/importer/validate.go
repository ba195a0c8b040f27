package importer

import (
	"fmt"

	"github.com/matteobrandi/traccia/internal/domain"
)

// ValidateProjectFile checks a transfer file for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateProjectFile(pf *ProjectFile) []error {
	var errs []error

	errs = append(errs, validateProject(&pf.Project)...)
	errs = append(errs, validateTasks(pf.Tasks)...)

	return errs
}

func validateProject(p *ProjectFields) []error {
	var errs []error

	if p.Title == "" {
		errs = append(errs, fmt.Errorf("project.title is required"))
	}
	if p.Budget != nil && *p.Budget < 0 {
		errs = append(errs, fmt.Errorf("project.budget must not be negative (got %d)", *p.Budget))
	}
	if p.Status != "" && !domain.ValidProjectStatuses[p.Status] {
		errs = append(errs, fmt.Errorf("project.status: invalid value %q", p.Status))
	}

	return errs
}

func validateTasks(tasks []TaskFields) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if t.Price != nil && *t.Price < 0 {
			errs = append(errs, fmt.Errorf("%s.price must not be negative (got %d)", prefix, *t.Price))
		}
		if t.Hours != nil && *t.Hours < 0 {
			errs = append(errs, fmt.Errorf("%s.hours must not be negative (got %g)", prefix, *t.Hours))
		}
	}

	return errs
}
