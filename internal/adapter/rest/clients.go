package rest

import (
	"log/slog"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

// Typed constructors for each collection the dashboard manages. Collection
// path segments mirror the remote API's routing.

func NewBrandClient(opts Options, log *slog.Logger) *Client[domain.Brand] {
	return NewClient[domain.Brand](opts, "brands", log)
}

func NewCategoryClient(opts Options, log *slog.Logger) *Client[domain.Category] {
	return NewClient[domain.Category](opts, "categories", log)
}

func NewTopicClient(opts Options, log *slog.Logger) *Client[domain.Topic] {
	return NewClient[domain.Topic](opts, "topics", log)
}

func NewContentTypeClient(opts Options, log *slog.Logger) *Client[domain.ContentType] {
	return NewClient[domain.ContentType](opts, "content-types", log)
}

func NewIdeaClient(opts Options, log *slog.Logger) *Client[domain.Idea] {
	return NewClient[domain.Idea](opts, "ideas", log)
}

func NewInspirationClient(opts Options, log *slog.Logger) *Client[domain.Inspiration] {
	return NewClient[domain.Inspiration](opts, "inspirations", log)
}

func NewPublicationClient(opts Options, log *slog.Logger) *Client[domain.Publication] {
	return NewClient[domain.Publication](opts, "publications", log)
}
