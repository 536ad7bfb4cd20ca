package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
	"github.com/wayfarer-dev/wayfarer/internal/llm"
)

// KnowledgeService answers free-text research questions about a
// destination. Unlike the other generators it surfaces errors: the
// research stage records them as per-field markers instead of failing.
type KnowledgeService interface {
	DestinationInfo(ctx context.Context, destination string, prefs domain.Preferences) (string, error)
	Attractions(ctx context.Context, destination string, prefs domain.Preferences) (string, error)
}

type knowledgeService struct {
	client llm.Client
}

func NewKnowledgeService(client llm.Client) KnowledgeService {
	return &knowledgeService{client: client}
}

func (s *knowledgeService) DestinationInfo(ctx context.Context, destination string, prefs domain.Preferences) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide practical travel information about %s.\n", destination)
	if len(prefs.Interests) > 0 {
		fmt.Fprintf(&b, "Focus on aspects relevant to: %s\n", strings.Join(prefs.Interests, ", "))
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDestinationInfo,
		SystemPrompt: destinationInfoSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return "", fmt.Errorf("destination info lookup failed: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("destination info lookup returned empty text")
	}
	return resp.Text, nil
}

func (s *knowledgeService) Attractions(ctx context.Context, destination string, prefs domain.Preferences) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "List the top attractions and activities in %s.\n", destination)
	if len(prefs.Interests) > 0 {
		fmt.Fprintf(&b, "Match these interests: %s\n", strings.Join(prefs.Interests, ", "))
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAttractions,
		SystemPrompt: attractionsSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return "", fmt.Errorf("attractions lookup failed: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("attractions lookup returned empty text")
	}
	return resp.Text, nil
}
