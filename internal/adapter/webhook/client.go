// Package webhook posts mutation events to the workflow-automation service.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Options carries the automation webhook settings.
type Options struct {
	URL     string
	Secret  string
	Timeout time.Duration
}

// Client delivers events to the automation webhook. A zero URL disables
// delivery: Notify becomes a no-op so callers never branch on configuration.
type Client struct {
	url        string
	secret     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a webhook client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        opts.URL,
		secret:     opts.Secret,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "webhook"),
	}
}

// Notify posts one event. Delivery failures are returned, not retried; the
// automation service is expected to be at-least-once tolerant upstream.
func (c *Client) Notify(ctx context.Context, event domain.Event) error {
	if c.url == "" {
		return nil
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("webhook: encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("X-Webhook-Secret", c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return domain.NewNetworkError(resp.StatusCode, string(bytes.TrimSpace(body)))
	}

	c.log.DebugContext(ctx, "event delivered",
		slog.String("entity_type", event.EntityType.String()),
		slog.String("action", event.Action.String()),
	)
	return nil
}
