package research

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mavenly/guru/internal/persona"
)

// StoryBankTool retrieves the persona's own case studies most relevant to
// the conversation context. Pure in-memory keyword overlap; no external
// calls and no failure mode beyond "nothing matched".
type StoryBankTool struct {
	persona *persona.Persona
}

func NewStoryBankTool(p *persona.Persona) *StoryBankTool {
	return &StoryBankTool{persona: p}
}

func (s *StoryBankTool) Name() string { return "story_bank" }

func (s *StoryBankTool) Blurb() string {
	return "story_bank: retrieves the case studies from this expert's own career that best match a " +
		"topic. Request it when a concrete historical example would make the advice land. Takes a " +
		"topic phrase as its argument."
}

func (s *StoryBankTool) Run(ctx context.Context, query string) (*Result, error) {
	words := strings.Fields(strings.ToLower(query))
	type scored struct {
		story persona.Story
		hits  int
	}

	var matches []scored
	for _, st := range s.persona.Stories {
		haystack := strings.ToLower(st.Title + " " + st.Context + " " + st.Challenge + " " + st.Lesson)
		hits := 0
		for _, w := range words {
			if len(w) < 4 {
				continue
			}
			if strings.Contains(haystack, w) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, scored{story: st, hits: hits})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].hits > matches[j].hits })
	if len(matches) > 2 {
		matches = matches[:2]
	}

	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "%s\nChallenge: %s\nAction: %s\nResult: %s\nLesson: %s\n\n",
			m.story.Title, m.story.Challenge, m.story.Action, m.story.Result, m.story.Lesson)
	}
	if len(matches) == 0 {
		b.WriteString("No matching case study.")
	}
	return &Result{Tool: s.Name(), Query: query, Findings: strings.TrimSpace(b.String()), Sources: []string{}}, nil
}
