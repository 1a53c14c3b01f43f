package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups ideas by editorial theme. Categories are global, not bound
// to a brand.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c Category) ResourceID() uuid.UUID { return c.ID }

// Validate checks all fields and collects all errors.
func (c Category) Validate() error {
	return validateName(c.Name, c.Description)
}

// Topic is a recurring subject a brand posts about.
type Topic struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t Topic) ResourceID() uuid.UUID { return t.ID }

// Validate checks all fields and collects all errors.
func (t Topic) Validate() error {
	return validateName(t.Name, t.Description)
}

// ContentType is a publication format (carousel, reel, article, ...).
type ContentType struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (t ContentType) ResourceID() uuid.UUID { return t.ID }

// Validate checks all fields and collects all errors.
func (t ContentType) Validate() error {
	return validateName(t.Name, nil)
}

// validateName applies the shared name/description rules for taxonomy records.
func validateName(name string, description *string) error {
	var errs []FieldError

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if len(trimmed) > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "max 100 characters"})
	}
	if description != nil && len(*description) > 500 {
		errs = append(errs, FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
