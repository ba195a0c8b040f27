package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matteobrandi/traccia/internal/db"
	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/ingest"
	"github.com/matteobrandi/traccia/internal/repository"
)

type draftService struct {
	source ingest.DraftSource
	uow    db.UnitOfWork
}

// NewDraftService creates the draft ingestion layer on top of any
// DraftSource.
func NewDraftService(source ingest.DraftSource, uow db.UnitOfWork) DraftService {
	return &draftService{source: source, uow: uow}
}

func (s *draftService) Draft(ctx context.Context, brief string) (*ingest.ProjectDraft, error) {
	draft, err := s.source.Draft(ctx, brief)
	if err != nil {
		return nil, err
	}
	if err := ingest.ValidateDraft(*draft); err != nil {
		return nil, fmt.Errorf("unusable draft: %w", err)
	}
	return draft, nil
}

func (s *draftService) CreateFromDraft(ctx context.Context, d *ingest.ProjectDraft) (*domain.Project, error) {
	if err := ingest.ValidateDraft(*d); err != nil {
		return nil, fmt.Errorf("unusable draft: %w", err)
	}

	now := time.Now().UTC()
	tasks := make([]domain.Task, 0, len(d.Tasks))
	for _, dt := range d.Tasks {
		tasks = append(tasks, domain.Task{
			ID:        uuid.New().String(),
			Name:      dt.Name,
			Price:     dt.Price,
			Hours:     dt.Hours,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	p := &domain.Project{
		ID:          uuid.New().String(),
		Title:       d.Title,
		Client:      d.Client,
		Description: d.Description,
		Status:      domain.ProjectActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// Replace settles the budget: priced tasks win over the drafted
	// total, an all-unpriced list shares it out.
	p.Replace(d.Title, d.Client, d.Description, d.Budget, tasks)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, p); err != nil {
			return err
		}
		return repository.NewSQLiteTaskRepo(tx).ReplaceForProject(ctx, p.ID, p.Tasks)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
