// Package research provides the auxiliary research tools: single-shot
// wrappers over external APIs (search completion, video platform) and local
// stores, all behind one interface so prompt assembly can enumerate them.
//
// Tools do not retry, paginate, or cache. Each Run is one best-effort round
// trip; transport errors propagate to the caller.
package research

import "context"

// Result is the uniform tool output shape.
type Result struct {
	Tool     string   `json:"tool"`
	Query    string   `json:"query"`
	Findings string   `json:"findings"`
	Sources  []string `json:"sources"`
}

// Tool is one research capability. Blurb returns a short paragraph telling
// an LLM how and when to request the tool; it is prompt text only. Nothing
// here invokes tools on the model's behalf.
type Tool interface {
	Name() string
	Blurb() string
	Run(ctx context.Context, query string) (*Result, error)
}
