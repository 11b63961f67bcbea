package persona

import (
	"log/slog"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestGetUnknownName(t *testing.T) {
	r := NewRegistry(testLogger(), &ClaudeHopkins)
	if p, ok := r.Get("Rosser Reeves"); ok || p != nil {
		t.Fatalf("expected miss for unregistered name, got %v", p)
	}
}

func TestGetExactNameOnly(t *testing.T) {
	r := NewRegistry(testLogger(), &ClaudeHopkins)
	if _, ok := r.Get("claude hopkins"); ok {
		t.Fatal("lookup must be exact, not case-insensitive")
	}
	if _, ok := r.Get("Claude Hopkins"); !ok {
		t.Fatal("exact lookup should succeed")
	}
}

func TestNamesPreserveRegistrationOrder(t *testing.T) {
	r := NewRegistry(testLogger(), &DavidOgilvy, &ClaudeHopkins)
	names := r.Names()
	if len(names) != 2 || names[0] != "David Ogilvy" || names[1] != "Claude Hopkins" {
		t.Fatalf("unexpected order: %v", names)
	}
}

func TestBuiltinsPassValidation(t *testing.T) {
	for _, p := range builtins() {
		if problems := Validate(p); len(problems) > 0 {
			t.Errorf("%s: %v", p.Name, problems)
		}
	}
}

func TestValidateFlagsWithoutRejecting(t *testing.T) {
	thin := &Persona{Name: "Thin", Title: "t"}
	problems := Validate(thin)
	if len(problems) == 0 {
		t.Fatal("expected validation problems for a thin persona")
	}
	r := NewRegistry(testLogger(), thin)
	if _, ok := r.Get("Thin"); !ok {
		t.Fatal("invalid persona must still be registered")
	}
}

func TestSystemPromptOrdering(t *testing.T) {
	prompt := SystemPrompt(&ClaudeHopkins)

	// Identity, then every story title, then every axiom, then every
	// callback, in that relative order.
	pos := strings.Index(prompt, "You are Claude Hopkins")
	if pos != 0 {
		t.Fatalf("identity block must lead the prompt, found at %d", pos)
	}
	cursor := pos
	advance := func(needle string) {
		t.Helper()
		i := strings.Index(prompt[cursor:], needle)
		if i < 0 {
			t.Fatalf("missing %q after offset %d", needle, cursor)
		}
		cursor += i
	}
	for _, s := range ClaudeHopkins.Stories {
		advance(s.Title)
	}
	for _, a := range ClaudeHopkins.Axioms {
		advance(a)
	}
	for _, c := range ClaudeHopkins.Callbacks {
		advance(c)
	}
}

func TestSystemPromptDeterministic(t *testing.T) {
	a := SystemPrompt(&MaryWellsLawrence)
	b := SystemPrompt(&MaryWellsLawrence)
	if a != b {
		t.Fatal("renders of an unmodified persona must be byte-identical")
	}
}

func TestReact(t *testing.T) {
	got := ClaudeHopkins.React("We mostly go on GUT FEELING here")
	if got == "" {
		t.Fatal("expected a canned reaction for a trigger phrase")
	}
	if ClaudeHopkins.React("nothing matches this") != "" {
		t.Fatal("expected empty reaction when no trigger matches")
	}
}

func TestReload(t *testing.T) {
	r := NewRegistry(testLogger(), builtins()...)
	before := r.Names()
	r.Reload()
	after := r.Names()
	if len(before) != len(after) {
		t.Fatalf("reload changed catalogue size: %d != %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("reload changed order at %d: %s != %s", i, before[i], after[i])
		}
	}
}
