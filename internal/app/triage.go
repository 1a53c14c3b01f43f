package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
	"github.com/heartmarshall/contentdesk/internal/service/review"
)

// NewInspirationReview builds a triage queue over the current inspiration
// list. Accept promotes the inspiration into a draft idea and removes it from
// the backlog; reject removes it outright. The queue follows the inspiration
// store through its change notifications, so removals triggered here (or
// anywhere else) flow back into the queue as list syncs.
func (a *App) NewInspirationReview(exit func()) *review.Queue {
	q := review.NewQueue(a.Log, inspirationItems(a.Inspirations.Records()), review.Callbacks{
		Accept: func(ctx context.Context, id uuid.UUID) error {
			insp, ok := a.Inspirations.Get(id)
			if !ok {
				return fmt.Errorf("inspiration %s: %w", id, domain.ErrNotFound)
			}
			_, err := a.Ideas.Create(ctx, domain.Idea{
				BrandID: insp.BrandID,
				Title:   insp.Title,
				Notes:   insp.Description,
				Status:  domain.IdeaStatusDraft,
			})
			if err != nil {
				return err
			}
			return a.Inspirations.Remove(ctx, id)
		},
		Reject: func(ctx context.Context, id uuid.UUID) error {
			return a.Inspirations.Remove(ctx, id)
		},
		Exit: exit,
	})

	a.Inspirations.OnChange(func() {
		q.SyncList(inspirationItems(a.Inspirations.Records()))
	})

	return q
}

func inspirationItems(records []domain.Inspiration) []review.Item {
	items := make([]review.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, review.Item{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Link:        rec.Link,
		})
	}
	return items
}
