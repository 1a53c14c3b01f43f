package publish

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

// GenerateDraft asks the LLM for post text based on an idea and stores the
// result as a draft publication linked back to the idea. The draft goes
// through the publication store's normal create path, so it shows up in the
// cache like any other record.
func (s *Service) GenerateDraft(ctx context.Context, input GenerateDraftInput) (domain.Publication, error) {
	if err := input.Validate(); err != nil {
		return domain.Publication{}, err
	}

	text, err := s.generator.GenerateText(ctx, buildDraftPrompt(input))
	if err != nil {
		return domain.Publication{}, fmt.Errorf("generate draft text: %w", err)
	}

	ideaID := input.IdeaID
	created, err := s.publications.Create(ctx, domain.Publication{
		IdeaID:  &ideaID,
		Content: text,
		Status:  domain.PublicationStatusDraft,
	})
	if err != nil {
		return domain.Publication{}, fmt.Errorf("create draft publication: %w", err)
	}

	id := created.ID
	s.notifyAutomation(ctx, domain.Event{
		EntityType: domain.EntityTypePublication,
		EntityID:   &id,
		Action:     domain.EventActionCreate,
		Payload: map[string]any{
			"ideaId":    input.IdeaID.String(),
			"generated": true,
		},
	})

	s.log.InfoContext(ctx, "draft generated",
		slog.String("idea_id", input.IdeaID.String()),
		slog.String("publication_id", created.ID.String()),
		slog.Int("chars", len(text)),
	)
	return created, nil
}

// buildDraftPrompt creates the LLM prompt for one idea.
func buildDraftPrompt(input GenerateDraftInput) string {
	var b strings.Builder

	b.WriteString("You are a social media copywriter for a personal brand.\n\n")
	fmt.Fprintf(&b, "Write a post based on this content idea: %q\n", strings.TrimSpace(input.Title))
	if input.Notes != nil && strings.TrimSpace(*input.Notes) != "" {
		fmt.Fprintf(&b, "\nAuthor notes:\n%s\n", strings.TrimSpace(*input.Notes))
	}
	if input.Tone != nil && strings.TrimSpace(*input.Tone) != "" {
		fmt.Fprintf(&b, "\nBrand tone of voice: %s\n", strings.TrimSpace(*input.Tone))
	}
	b.WriteString(`
Rules:
- Output ONLY the post text, no preamble, no markdown fences
- Keep it under 2000 characters
- Write in the same language as the idea title`)

	return b.String()
}
