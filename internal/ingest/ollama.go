package ingest

import (
	"context"
	"fmt"

	"github.com/matteobrandi/traccia/internal/llm"
)

// OllamaSource produces project drafts from a local language model.
type OllamaSource struct {
	client llm.Client
}

// NewOllamaSource creates a DraftSource backed by an LLM client.
func NewOllamaSource(client llm.Client) *OllamaSource {
	return &OllamaSource{client: client}
}

func (s *OllamaSource) Draft(ctx context.Context, brief string) (*ProjectDraft, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: draftSystemPrompt,
		UserPrompt:   brief,
	})
	if err != nil {
		return nil, fmt.Errorf("llm draft failed: %w", err)
	}

	draft, err := llm.ExtractJSON[ProjectDraft](resp.Text, ValidateDraft)
	if err != nil {
		return nil, fmt.Errorf("extracting draft: %w", err)
	}
	return &draft, nil
}
