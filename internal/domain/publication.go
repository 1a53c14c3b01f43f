package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Publication is a concrete post for a brand, either kept as a draft or
// scheduled on the external posting service. ExternalPostID is the id the
// scheduling API assigned, present only after a successful schedule call.
type Publication struct {
	ID             uuid.UUID         `json:"id"`
	BrandID        uuid.UUID         `json:"brandId"`
	IdeaID         *uuid.UUID        `json:"ideaId,omitempty"`
	Content        string            `json:"content"`
	Status         PublicationStatus `json:"status"`
	ScheduledAt    *time.Time        `json:"scheduledAt,omitempty"`
	ExternalPostID *string           `json:"externalPostId,omitempty"`
	IsArchived     bool              `json:"isArchived"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func (p Publication) ResourceID() uuid.UUID { return p.ID }

// ScopeID returns the owning brand id, uuid.Nil when unset.
func (p Publication) ScopeID() uuid.UUID { return p.BrandID }

// Validate checks all fields and collects all errors.
func (p Publication) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(p.Content) == "" {
		errs = append(errs, FieldError{Field: "content", Message: "required"})
	}
	if len(p.Content) > 10000 {
		errs = append(errs, FieldError{Field: "content", Message: "max 10000 characters"})
	}
	if p.Status != "" && !p.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown status"})
	}
	if p.Status == PublicationStatusScheduled && p.ScheduledAt == nil {
		errs = append(errs, FieldError{Field: "scheduledAt", Message: "required for scheduled status"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
