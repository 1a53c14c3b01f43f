package store

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
	"github.com/heartmarshall/contentdesk/internal/scope"
)

// Per-resource constructors. Ideas, inspirations and publications are
// brand-scoped and newest-first; brands and the taxonomy resources are global
// sets keyed by id.

func NewBrandStore(log *slog.Logger, client Client[domain.Brand]) *Store[domain.Brand] {
	return New(log, Config[domain.Brand]{
		Resource: "brands",
		Client:   client,
	})
}

func NewCategoryStore(log *slog.Logger, client Client[domain.Category]) *Store[domain.Category] {
	return New(log, Config[domain.Category]{
		Resource: "categories",
		Client:   client,
	})
}

func NewTopicStore(log *slog.Logger, client Client[domain.Topic]) *Store[domain.Topic] {
	return New(log, Config[domain.Topic]{
		Resource: "topics",
		Client:   client,
	})
}

func NewContentTypeStore(log *slog.Logger, client Client[domain.ContentType]) *Store[domain.ContentType] {
	return New(log, Config[domain.ContentType]{
		Resource: "content-types",
		Client:   client,
	})
}

func NewIdeaStore(log *slog.Logger, client Client[domain.Idea], sel *scope.Selection) *Store[domain.Idea] {
	return New(log, Config[domain.Idea]{
		Resource:    "ideas",
		Client:      client,
		Scope:       sel,
		ScopeOf:     func(i domain.Idea) uuid.UUID { return i.BrandID },
		BindScope:   func(i domain.Idea, id uuid.UUID) domain.Idea { i.BrandID = id; return i },
		NewestFirst: true,
	})
}

func NewInspirationStore(log *slog.Logger, client Client[domain.Inspiration], sel *scope.Selection) *Store[domain.Inspiration] {
	return New(log, Config[domain.Inspiration]{
		Resource:    "inspirations",
		Client:      client,
		Scope:       sel,
		ScopeOf:     func(i domain.Inspiration) uuid.UUID { return i.BrandID },
		BindScope:   func(i domain.Inspiration, id uuid.UUID) domain.Inspiration { i.BrandID = id; return i },
		NewestFirst: true,
	})
}

func NewPublicationStore(log *slog.Logger, client Client[domain.Publication], sel *scope.Selection) *Store[domain.Publication] {
	return New(log, Config[domain.Publication]{
		Resource:    "publications",
		Client:      client,
		Scope:       sel,
		ScopeOf:     func(p domain.Publication) uuid.UUID { return p.BrandID },
		BindScope:   func(p domain.Publication, id uuid.UUID) domain.Publication { p.BrandID = id; return p },
		NewestFirst: true,
	})
}
