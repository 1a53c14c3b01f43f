package publish

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

// SchedulePublication submits a cached publication to the posting API and
// records the outcome. With ScheduledAt set, the instant is encoded as civil
// local time in the deployment zone; without it the post lands as a draft on
// the posting service and no time fields are sent at all.
func (s *Service) SchedulePublication(ctx context.Context, input SchedulePublicationInput) (domain.Publication, error) {
	if err := input.Validate(); err != nil {
		return domain.Publication{}, err
	}

	pub, ok := s.publications.Get(input.PublicationID)
	if !ok {
		return domain.Publication{}, fmt.Errorf("publication %s: %w", input.PublicationID, domain.ErrNotFound)
	}

	var localTime, zone *string
	if input.ScheduledAt != nil {
		if input.ScheduledAt.IsZero() {
			return domain.Publication{}, fmt.Errorf("%w: scheduling requested without a valid instant", domain.ErrTimezone)
		}
		localTime = ptr(CivilTime(*input.ScheduledAt, s.loc))
		zone = ptr(s.zoneName)
	}

	result, err := s.scheduler.SchedulePost(ctx, pub.Content, localTime, zone)
	if err != nil {
		return domain.Publication{}, fmt.Errorf("schedule post: %w", err)
	}

	patch := domain.Patch{
		"externalPostId": result.ID,
	}
	if input.ScheduledAt != nil {
		patch["status"] = domain.PublicationStatusScheduled.String()
		patch["scheduledAt"] = input.ScheduledAt.UTC().Format(time.RFC3339)
	}

	updated, err := s.publications.Update(ctx, input.PublicationID, patch)
	if err != nil {
		return domain.Publication{}, fmt.Errorf("record schedule result: %w", err)
	}

	id := updated.ID
	s.notifyAutomation(ctx, domain.Event{
		EntityType: domain.EntityTypePublication,
		EntityID:   &id,
		Action:     domain.EventActionSchedule,
		Payload: map[string]any{
			"externalPostId": result.ID,
			"scheduled":      input.ScheduledAt != nil,
		},
	})

	s.log.InfoContext(ctx, "publication submitted",
		slog.String("publication_id", input.PublicationID.String()),
		slog.String("external_post_id", result.ID),
		slog.Bool("scheduled", input.ScheduledAt != nil),
	)
	return updated, nil
}
