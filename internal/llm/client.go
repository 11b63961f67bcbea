// Package llm wraps the hosted completion API and the plumbing every
// call site shares: message assembly, first-text-block extraction, and
// recovery of JSON objects from prose-wrapped model output.
package llm

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

// Model identifiers, fixed per call site.
const (
	ModelChat   = "claude-sonnet-4-5-20250929"
	ModelEnrich = "claude-haiku-4-5-20251001"
)

// Message is one turn of conversation history. Role is "user" or
// "assistant"; the caller guarantees ordering and role validity.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single completion call.
type Request struct {
	Model     string
	System    string
	Messages  []Message
	MaxTokens int64
}

// Completer is the narrow interface the rest of the codebase depends on,
// so tests can substitute a fake.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Client calls the Anthropic Messages API. The zero-value-style constructor
// reads ANTHROPIC_API_KEY from the environment, as the SDK does.
type Client struct {
	api anthropic.Client
}

func NewClient() *Client {
	return &Client{api: anthropic.NewClient()}
}

// Complete performs one completion round trip and returns the first
// text-typed content block. A response with no text block yields "".
// Errors from the API propagate unmodified; no retry, no fallback.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if req.MaxTokens <= 0 {
		req.MaxTokens = 4096
	}

	msgs := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "assistant":
			msgs = append(msgs, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: req.MaxTokens,
		Messages:  msgs,
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	message, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}
	return firstText(message), nil
}

// firstText returns the first text block of a response. If the response
// carries no text block at all, the stringified first block is returned,
// or "" when the response is empty.
func firstText(msg *anthropic.Message) string {
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			return strings.TrimSpace(tb.Text)
		}
	}
	if len(msg.Content) > 0 {
		return msg.Content[0].RawJSON()
	}
	return ""
}
