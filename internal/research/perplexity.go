package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	perplexityEndpoint = "https://api.perplexity.ai/chat/completions"
	perplexityModel    = "sonar-pro"

	maxResponseBodyBytes = 4 * 1024 * 1024
)

// PerplexityClient is a minimal client for the search-completion API. The
// API key is validated lazily, at first use, so constructing tools in an
// unconfigured environment costs nothing.
type PerplexityClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewPerplexityClient reads PERPLEXITY_API_KEY from the environment when
// apiKey is empty.
func NewPerplexityClient(apiKey string) *PerplexityClient {
	if apiKey == "" {
		apiKey = os.Getenv("PERPLEXITY_API_KEY")
	}
	return &PerplexityClient{
		apiKey:   apiKey,
		endpoint: perplexityEndpoint,
		http:     &http.Client{Timeout: 60 * time.Second},
	}
}

type pplxRequest struct {
	Model       string        `json:"model"`
	Messages    []pplxMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type pplxMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type pplxResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

// Ask sends one system+user message pair and returns the answer text plus
// any citation URLs.
func (c *PerplexityClient) Ask(ctx context.Context, system, user string) (string, []string, error) {
	if c.apiKey == "" {
		return "", nil, fmt.Errorf("PERPLEXITY_API_KEY is not set")
	}

	body, err := json.Marshal(pplxRequest{
		Model: perplexityModel,
		Messages: []pplxMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("search api request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return "", nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("search api status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var parsed pplxResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", nil, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", nil, fmt.Errorf("empty response from search api")
	}
	return parsed.Choices[0].Message.Content, parsed.Citations, nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
