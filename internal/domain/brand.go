package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Brand is a personal brand: the scope entity every scoped resource hangs off.
type Brand struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Tone        *string   `json:"tone,omitempty"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (b Brand) ResourceID() uuid.UUID { return b.ID }

// Validate checks all fields and collects all errors.
func (b Brand) Validate() error {
	var errs []FieldError

	name := strings.TrimSpace(b.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "max 100 characters"})
	}
	if b.Description != nil && len(*b.Description) > 1000 {
		errs = append(errs, FieldError{Field: "description", Message: "max 1000 characters"})
	}
	if b.Tone != nil && len(*b.Tone) > 500 {
		errs = append(errs, FieldError{Field: "tone", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
