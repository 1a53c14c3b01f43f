package publish

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

// SchedulePublicationInput holds the parameters for submitting a publication
// to the posting API. A nil ScheduledAt submits it as a draft on the posting
// service; the local time and timezone fields are then omitted entirely.
type SchedulePublicationInput struct {
	PublicationID uuid.UUID
	ScheduledAt   *time.Time
}

// Validate checks all fields and collects all errors.
func (i SchedulePublicationInput) Validate() error {
	var errs []domain.FieldError

	if i.PublicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "publication_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GenerateDraftInput holds the parameters for generating draft post text
// from an idea.
type GenerateDraftInput struct {
	IdeaID uuid.UUID
	Title  string
	Notes  *string
	Tone   *string
}

// Validate checks all fields and collects all errors.
func (i GenerateDraftInput) Validate() error {
	var errs []domain.FieldError

	if i.IdeaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "idea_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
