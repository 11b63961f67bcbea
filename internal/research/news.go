package research

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// NewsMonitor answers "what happened lately" questions with cited, recent
// coverage from the search-completion API.
type NewsMonitor struct {
	client *PerplexityClient
}

func NewNewsMonitor(client *PerplexityClient) *NewsMonitor {
	return &NewsMonitor{client: client}
}

func (n *NewsMonitor) Name() string { return "news_monitor" }

func (n *NewsMonitor) Blurb() string {
	return "news_monitor: looks up recent news coverage for a topic and returns a cited summary. " +
		"Request it when the user asks about current events, competitor announcements, or anything " +
		"that happened after your knowledge cutoff. Takes a single search phrase as its argument."
}

func (n *NewsMonitor) Run(ctx context.Context, query string) (*Result, error) {
	findings, sources, err := n.client.Ask(ctx,
		"You are a marketing news analyst. Report only developments from the last 30 days, dated, with sources.",
		fmt.Sprintf("Summarize the most important recent marketing-relevant news about: %s. "+
			"Give 3-5 bullet points, each with a date.", query))
	if err != nil {
		return nil, err
	}

	// Best effort: pull a readable excerpt from the first citation so the
	// persona can quote primary material, not just the summary.
	if len(sources) > 0 {
		if excerpt := articleExcerpt(ctx, sources[0]); excerpt != "" {
			findings += "\n\nFrom " + sources[0] + ":\n" + excerpt
		}
	}

	return &Result{Tool: n.Name(), Query: query, Findings: findings, Sources: sources}, nil
}

// articleExcerpt fetches a cited page and extracts the first stretch of
// readable text. Any failure returns "": the citation list already stands
// on its own.
func articleExcerpt(ctx context.Context, source string) string {
	parsed, err := url.Parse(source)
	if err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return ""
	}
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(article.TextContent)
	if len(text) > 600 {
		text = text[:600] + "..."
	}
	return text
}
