package domain

import "github.com/google/uuid"

// ListFilter contains the listing predicates shared by every resource type.
// Zero value means "default listing": archived records excluded, no scope or
// status restriction.
type ListFilter struct {
	// IncludeArchived also returns soft-deleted records.
	IncludeArchived bool

	// BrandID restricts scoped resources to one personal brand.
	BrandID *uuid.UUID

	// Status filters by the resource's status enum, where it has one.
	Status *string

	// CategoryID restricts ideas to one category.
	CategoryID *uuid.UUID
}

// Patch is a partial update: a flat mapping of field name to new value.
// Resource fields are scalars or small JSON values, so a map body round-trips
// cleanly through the REST layer.
type Patch map[string]any
