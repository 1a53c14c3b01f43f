package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Inspiration is a saved piece of external content waiting for triage:
// the review flow either promotes it into an idea or discards it.
type Inspiration struct {
	ID          uuid.UUID `json:"id"`
	BrandID     uuid.UUID `json:"brandId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Link        *string   `json:"link,omitempty"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (i Inspiration) ResourceID() uuid.UUID { return i.ID }

// ScopeID returns the owning brand id, uuid.Nil when unset.
func (i Inspiration) ScopeID() uuid.UUID { return i.BrandID }

// Validate checks all fields and collects all errors.
func (i Inspiration) Validate() error {
	var errs []FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Link != nil && len(*i.Link) > 2048 {
		errs = append(errs, FieldError{Field: "link", Message: "max 2048 characters"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
