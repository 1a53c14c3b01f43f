// Package scheduler implements the client for the external posting API. The
// API takes naive local time plus a timezone name, never an absolute instant,
// so callers hand it pre-encoded civil time strings.
package scheduler

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

const defaultTimeout = 15 * time.Second

// Options carries the posting API connection and account settings. Platform
// and AccountID are fixed per deployment.
type Options struct {
	BaseURL   string
	Token     string
	Platform  string
	AccountID string
	Timeout   time.Duration
}

// PostRequest is the wire shape of a post submission. ScheduledFor is the
// civil local date-time (YYYY-MM-DDTHH:mm) and Timezone the zone name; both
// are omitted entirely for drafts, never defaulted.
type PostRequest struct {
	Content      string  `json:"content"`
	Platform     string  `json:"platform"`
	AccountID    string  `json:"accountId"`
	ScheduledFor *string `json:"scheduledFor,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`
}

// PostResult is the posting API's acknowledgement.
type PostResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Client talks to the posting API.
type Client struct {
	baseURL    string
	token      string
	platform   string
	accountID  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a scheduling API client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    opts.BaseURL,
		token:      opts.Token,
		platform:   opts.Platform,
		accountID:  opts.AccountID,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "scheduler"),
	}
}

// SchedulePost submits a post. Pass nil localTime and zone to create a draft
// on the posting service instead of scheduling. Submission is not retried:
// the API call is not idempotent and a duplicate post is worse than a
// surfaced error.
func (c *Client) SchedulePost(ctx context.Context, content string, localTime, zone *string) (PostResult, error) {
	reqBody := PostRequest{
		Content:      content,
		Platform:     c.platform,
		AccountID:    c.accountID,
		ScheduledFor: localTime,
		Timezone:     zone,
	}

	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return PostResult{}, fmt.Errorf("scheduler: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/posts", bytes.NewReader(encoded))
	if err != nil {
		return PostResult{}, fmt.Errorf("scheduler: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "scheduler request failed", slog.String("error", err.Error()))
		return PostResult{}, fmt.Errorf("scheduler: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return PostResult{}, fmt.Errorf("scheduler: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return PostResult{}, domain.NewNetworkError(resp.StatusCode, string(bytes.TrimSpace(body)))
	}

	var result PostResult
	if err := json.Unmarshal(body, &result); err != nil {
		return PostResult{}, fmt.Errorf("scheduler: decode response: %w", err)
	}

	c.log.InfoContext(ctx, "post submitted",
		slog.String("post_id", result.ID),
		slog.Bool("scheduled", localTime != nil),
	)
	return result, nil
}
