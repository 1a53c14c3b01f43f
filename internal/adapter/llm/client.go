// Package llm wraps the Claude Messages API for draft text generation.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultMaxTokens = 1024

// Options carries the LLM API settings.
type Options struct {
	APIKey    string
	Model     string
	MaxTokens int64
}

// Client generates publication text from prompts.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewClient creates an LLM client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{
		client:    anthropic.NewClient(option.WithAPIKey(opts.APIKey)),
		model:     opts.Model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "llm"),
	}
}

// GenerateText sends one prompt and returns the model's text response.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("llm: empty response")
	}

	text := strings.TrimSpace(msg.Content[0].Text)
	if text == "" {
		return "", fmt.Errorf("llm: response contains no text")
	}

	c.log.DebugContext(ctx, "llm response",
		slog.String("model", c.model),
		slog.Int("chars", len(text)),
	)
	return text, nil
}
