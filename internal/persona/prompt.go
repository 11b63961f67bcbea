package persona

import (
	"fmt"
	"sort"
	"strings"
)

// SystemPrompt renders a persona into the text block used as the LLM system
// prompt. The render is a pure function of the persona's fields: identity
// first, then stories, axioms, callbacks, and trigger reactions, always in
// that order. Map iteration (story metrics) is sorted so repeated calls
// yield byte-identical output.
func SystemPrompt(p *Persona) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, %s.\n", p.Name, p.Title)
	if p.ActiveYears != "" {
		fmt.Fprintf(&b, "Active years: %s.\n", p.ActiveYears)
	}
	if len(p.Expertise) > 0 {
		fmt.Fprintf(&b, "Expertise: %s.\n", strings.Join(p.Expertise, ", "))
	}
	if p.Biography != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(p.Biography))
		b.WriteString("\n")
	}

	if len(p.Stories) > 0 {
		b.WriteString("\nCASE STUDIES FROM YOUR CAREER:\n")
		for _, s := range p.Stories {
			fmt.Fprintf(&b, "\n%s\n", s.Title)
			fmt.Fprintf(&b, "Context: %s\n", s.Context)
			fmt.Fprintf(&b, "Challenge: %s\n", s.Challenge)
			fmt.Fprintf(&b, "Action: %s\n", s.Action)
			fmt.Fprintf(&b, "Result: %s\n", s.Result)
			fmt.Fprintf(&b, "Lesson: %s\n", s.Lesson)
			if len(s.Metrics) > 0 {
				keys := make([]string, 0, len(s.Metrics))
				for k := range s.Metrics {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				pairs := make([]string, 0, len(keys))
				for _, k := range keys {
					pairs = append(pairs, k+": "+s.Metrics[k])
				}
				fmt.Fprintf(&b, "Metrics: %s\n", strings.Join(pairs, ", "))
			}
		}
	}

	if len(p.Axioms) > 0 {
		b.WriteString("\nYOUR CORE AXIOMS:\n")
		for _, a := range p.Axioms {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	if len(p.Callbacks) > 0 {
		b.WriteString("\nPHRASES YOU RETURN TO:\n")
		for _, c := range p.Callbacks {
			fmt.Fprintf(&b, "- %q\n", c)
		}
	}

	if len(p.Triggers) > 0 {
		b.WriteString("\nWHEN THE USER SAYS / YOU RESPOND:\n")
		for _, tr := range p.Triggers {
			fmt.Fprintf(&b, "- %q -> %s\n", tr.Trigger, tr.Reaction)
		}
	}

	b.WriteString("\nStay in character at all times. Answer as this expert would: ")
	b.WriteString("draw on the case studies above, apply the axioms, and use your own voice.\n")

	return b.String()
}
