package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Idea is a content idea for a brand, optionally classified by category,
// topic and content type. Classification links are weak references: the idea
// stores ids only, never owns the linked records.
type Idea struct {
	ID         uuid.UUID  `json:"id"`
	BrandID    uuid.UUID  `json:"brandId"`
	Title      string     `json:"title"`
	Notes      *string    `json:"notes,omitempty"`
	Status     IdeaStatus `json:"status"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	TopicID    *uuid.UUID `json:"topicId,omitempty"`
	TypeID     *uuid.UUID `json:"typeId,omitempty"`
	IsArchived bool       `json:"isArchived"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (i Idea) ResourceID() uuid.UUID { return i.ID }

// ScopeID returns the owning brand id, uuid.Nil when unset.
func (i Idea) ScopeID() uuid.UUID { return i.BrandID }

// Validate checks all fields and collects all errors.
func (i Idea) Validate() error {
	var errs []FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Notes != nil && len(*i.Notes) > 5000 {
		errs = append(errs, FieldError{Field: "notes", Message: "max 5000 characters"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
