package ingest

import (
	"context"
	"strings"
	"time"
)

// StubSource returns a canned draft after a short artificial delay. It
// stands in when no LLM is configured, so the draft flow stays usable
// offline.
type StubSource struct {
	Delay time.Duration
}

// NewStubSource creates a StubSource with the default delay.
func NewStubSource() *StubSource {
	return &StubSource{Delay: 1500 * time.Millisecond}
}

func (s *StubSource) Draft(ctx context.Context, brief string) (*ProjectDraft, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	title := strings.TrimSpace(brief)
	if title == "" {
		title = "New project"
	}
	if len(title) > 60 {
		title = title[:60]
	}

	return &ProjectDraft{
		Title:       title,
		Description: "Draft generated from: " + strings.TrimSpace(brief),
		Budget:      550,
		Tasks: []DraftTask{
			{Name: "Analysis and design", Price: 250, Hours: 8},
			{Name: "Implementation", Price: 300, Hours: 12},
		},
	}, nil
}
