// Package rest implements the resource client boundary over the dashboard's
// JSON REST API. One generic client per resource collection.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
	"github.com/heartmarshall/contentdesk/pkg/ctxutil"
)

const defaultTimeout = 10 * time.Second

// Options carries the connection settings shared by every collection client.
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to one resource collection (/api/v1/<collection>).
type Client[T domain.Resource] struct {
	baseURL    string
	collection string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a client for the given collection path segment.
func NewClient[T domain.Resource](opts Options, collection string, logger *slog.Logger) *Client[T] {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client[T]{
		baseURL:    opts.BaseURL,
		collection: collection,
		token:      opts.Token,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "rest", "collection", collection),
	}
}

// List fetches all records matching the filter.
func (c *Client[T]) List(ctx context.Context, filter domain.ListFilter) ([]T, error) {
	q := url.Values{}
	if filter.IncludeArchived {
		q.Set("includeArchived", "true")
	}
	if filter.BrandID != nil {
		q.Set("brandId", filter.BrandID.String())
	}
	if filter.Status != nil {
		q.Set("status", *filter.Status)
	}
	if filter.CategoryID != nil {
		q.Set("categoryId", filter.CategoryID.String())
	}

	reqURL := c.collectionURL()
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	body, err := c.do(ctx, http.MethodGet, reqURL, nil, true)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("rest: decode %s list: %w", c.collection, err)
	}
	return records, nil
}

// Create sends a new record and returns the server's copy, including the
// assigned id and timestamps.
func (c *Client[T]) Create(ctx context.Context, payload T) (T, error) {
	var zero T

	encoded, err := json.Marshal(payload)
	if err != nil {
		return zero, fmt.Errorf("rest: encode %s: %w", c.collection, err)
	}

	body, err := c.do(ctx, http.MethodPost, c.collectionURL(), encoded, false)
	if err != nil {
		return zero, err
	}

	var created T
	if err := json.Unmarshal(body, &created); err != nil {
		return zero, fmt.Errorf("rest: decode created %s: %w", c.collection, err)
	}
	return created, nil
}

// Update sends a partial change and returns the server's updated record.
func (c *Client[T]) Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (T, error) {
	var zero T

	encoded, err := json.Marshal(patch)
	if err != nil {
		return zero, fmt.Errorf("rest: encode %s patch: %w", c.collection, err)
	}

	body, err := c.do(ctx, http.MethodPatch, c.recordURL(id), encoded, false)
	if err != nil {
		return zero, err
	}

	var updated T
	if err := json.Unmarshal(body, &updated); err != nil {
		return zero, fmt.Errorf("rest: decode updated %s: %w", c.collection, err)
	}
	return updated, nil
}

// Delete permanently removes a record.
func (c *Client[T]) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, c.recordURL(id), nil, true)
	return err
}

func (c *Client[T]) collectionURL() string {
	return c.baseURL + "/api/v1/" + c.collection
}

func (c *Client[T]) recordURL(id uuid.UUID) string {
	return c.collectionURL() + "/" + id.String()
}

// do executes one request, retrying once on 5xx or transport errors when the
// method is idempotent. Non-success responses become *domain.NetworkError
// carrying the server-provided message.
func (c *Client[T]) do(ctx context.Context, method, reqURL string, payload []byte, idempotent bool) ([]byte, error) {
	resp, err := c.attempt(ctx, method, reqURL, payload)

	shouldRetry := idempotent && (err != nil || resp.StatusCode >= 500)
	if shouldRetry && ctx.Err() == nil {
		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
			resp.Body.Close()
		}
		c.log.WarnContext(ctx, "rest retry",
			slog.String("method", method),
			slog.String("reason", reason),
		)
		time.Sleep(500 * time.Millisecond)
		resp, err = c.attempt(ctx, method, reqURL, payload)
	}
	if err != nil {
		return nil, fmt.Errorf("rest: %s %s: %w", method, c.collection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rest: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewNetworkError(resp.StatusCode, serverMessage(body))
	}

	c.log.DebugContext(ctx, "rest response",
		slog.String("method", method),
		slog.Int("status", resp.StatusCode),
	)
	return body, nil
}

// attempt builds and executes a single request. The body is rebuilt from the
// encoded payload each time so a retry never reuses a drained reader.
func (c *Client[T]) attempt(ctx context.Context, method, reqURL string, payload []byte) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if rid := ctxutil.RequestIDFromCtx(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	return c.httpClient.Do(req)
}

// serverMessage pulls the human-readable error text out of an error response
// body. Both {"error":{"message":...}} and {"message":...} shapes are
// accepted; anything else falls back to the raw body.
func serverMessage(body []byte) string {
	var wrapped struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if wrapped.Error.Message != "" {
			return wrapped.Error.Message
		}
		if wrapped.Message != "" {
			return wrapped.Message
		}
	}
	return string(bytes.TrimSpace(body))
}
