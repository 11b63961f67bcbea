// Package persona holds the static catalogue of marketing-expert personas
// and renders them into LLM system prompts.
package persona

import "strings"

// Story is one canned case study from a persona's career, rendered into the
// system prompt and retrievable by keyword for conversational flavor.
type Story struct {
	Title     string
	Context   string
	Challenge string
	Action    string
	Result    string
	Lesson    string
	Metrics   map[string]string
}

// TriggerReaction pairs a phrase checked against user input (substring,
// case-insensitive) with the canned reaction the persona should voice.
type TriggerReaction struct {
	Trigger  string
	Reaction string
}

// Persona is one hand-authored expert. Instances are package-level vars,
// built once, and never mutated after registration.
type Persona struct {
	Name        string
	Title       string
	Expertise   []string
	Biography   string
	ActiveYears string

	Stories   []Story
	Callbacks []string
	Axioms    []string
	Triggers  []TriggerReaction

	// PositiveKeywords and NegativeKeywords are scanned against user input
	// to decide whether this persona should lean in or push back.
	PositiveKeywords []string
	NegativeKeywords []string
}

// React returns the canned reaction for the first trigger phrase found in
// the input, or "" when nothing matches.
func (p *Persona) React(input string) string {
	lower := strings.ToLower(input)
	for _, tr := range p.Triggers {
		if strings.Contains(lower, strings.ToLower(tr.Trigger)) {
			return tr.Reaction
		}
	}
	return ""
}
