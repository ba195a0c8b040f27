package importer

import (
	"time"

	"github.com/google/uuid"
	"github.com/matteobrandi/traccia/internal/budget"
	"github.com/matteobrandi/traccia/internal/domain"
)

// Convert transforms a validated ProjectFile into a domain aggregate
// ready for persistence. Call ValidateProjectFile first; Convert
// assumes the file is valid.
//
// Budget resolution: if any task carries an explicit price, the prices
// are authoritative and the total reconciles from their sum. If no
// task is priced, the file budget redistributes across the tasks. A
// completed status in the file is ignored; completion derives from the
// done flags.
func Convert(pf *ProjectFile) *domain.Project {
	now := time.Now().UTC()

	p := &domain.Project{
		ID:        uuid.New().String(),
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tasks := make([]domain.Task, 0, len(pf.Tasks))
	for _, t := range pf.Tasks {
		price := domain.IntFromPtrWithDefault(0, t.Price)
		hours := 0
		if t.Hours != nil {
			hours = budget.RoundAmount(*t.Hours)
		}
		tasks = append(tasks, domain.Task{
			ID:        uuid.New().String(),
			Name:      t.Name,
			Price:     price,
			Hours:     hours,
			Completed: t.Done,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	total := domain.IntFromPtrWithDefault(0, pf.Project.Budget)

	p.Replace(pf.Project.Title, pf.Project.Client, pf.Project.Description, total, tasks)
	if pf.Project.Status == string(domain.ProjectPaused) {
		p.Pause()
	}
	return p
}

// Export builds a transfer file from a domain aggregate. The output
// round-trips through Convert: every task keeps its explicit price, so
// the reconciled total matches the exported budget.
func Export(p *domain.Project) *ProjectFile {
	total := p.TotalBudget
	pf := &ProjectFile{
		Project: ProjectFields{
			Title:       p.Title,
			Client:      p.Client,
			Description: p.Description,
			Budget:      &total,
			Status:      string(p.Status),
		},
	}
	for _, t := range p.Tasks {
		price := t.Price
		tf := TaskFields{
			Name:  t.Name,
			Price: &price,
			Done:  t.Completed,
		}
		if t.Hours > 0 {
			hours := float64(t.Hours)
			tf.Hours = &hours
		}
		pf.Tasks = append(pf.Tasks, tf)
	}
	return pf
}
