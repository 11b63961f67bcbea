package research

import (
	"context"
	"fmt"
)

// TrendAnalysis asks the search-completion API for directional movement in
// a market or channel rather than point-in-time news.
type TrendAnalysis struct {
	client *PerplexityClient
}

func NewTrendAnalysis(client *PerplexityClient) *TrendAnalysis {
	return &TrendAnalysis{client: client}
}

func (t *TrendAnalysis) Name() string { return "trend_analysis" }

func (t *TrendAnalysis) Blurb() string {
	return "trend_analysis: analyzes how a market, channel, or consumer behavior is trending and why. " +
		"Request it when the user asks where things are heading, what is growing or declining, or " +
		"whether a tactic still works. Takes a single topic phrase as its argument."
}

func (t *TrendAnalysis) Run(ctx context.Context, query string) (*Result, error) {
	findings, sources, err := t.client.Ask(ctx,
		"You are a trend analyst for marketing strategy. Distinguish durable shifts from fads and say which is which.",
		fmt.Sprintf("Analyze current trends around: %s. Cover what is rising, what is declining, "+
			"what is driving the change, and what a marketer should do about it.", query))
	if err != nil {
		return nil, err
	}
	return &Result{Tool: t.Name(), Query: query, Findings: findings, Sources: sources}, nil
}
