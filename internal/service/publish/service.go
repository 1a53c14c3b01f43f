package publish

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/adapter/scheduler"
	"github.com/heartmarshall/contentdesk/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type publicationStore interface {
	Get(id uuid.UUID) (domain.Publication, bool)
	Create(ctx context.Context, payload domain.Publication) (domain.Publication, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Publication, error)
}

type postScheduler interface {
	SchedulePost(ctx context.Context, content string, localTime, zone *string) (scheduler.PostResult, error)
}

type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type automationNotifier interface {
	Notify(ctx context.Context, event domain.Event) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service turns publications into scheduled posts and drafts generated text
// for new ones.
type Service struct {
	publications publicationStore
	scheduler    postScheduler
	generator    textGenerator
	automation   automationNotifier
	loc          *time.Location
	zoneName     string
	log          *slog.Logger
}

// NewService creates a Publish service. zoneName is the posting timezone for
// the whole deployment (the posting API wants wall-clock time in it).
func NewService(
	log *slog.Logger,
	publications publicationStore,
	postClient postScheduler,
	generator textGenerator,
	automation automationNotifier,
	zoneName string,
) (*Service, error) {
	loc, err := LoadZone(zoneName)
	if err != nil {
		return nil, err
	}

	return &Service{
		publications: publications,
		scheduler:    postClient,
		generator:    generator,
		automation:   automation,
		loc:          loc,
		zoneName:     zoneName,
		log:          log.With("service", "publish"),
	}, nil
}

// notifyAutomation delivers a workflow event. Delivery is best-effort: the
// publication state is already settled, so a webhook failure is logged and
// never rolls anything back.
func (s *Service) notifyAutomation(ctx context.Context, event domain.Event) {
	if err := s.automation.Notify(ctx, event); err != nil {
		s.log.WarnContext(ctx, "automation notify failed",
			slog.String("action", event.Action.String()),
			slog.String("error", err.Error()),
		)
	}
}

func ptr(s string) *string { return &s }
