package persona

import (
	"log/slog"
	"sync"
)

// Validation thresholds. A persona missing any of these is still registered
// and usable; registration just logs the gap so the catalogue author sees it.
const (
	minStories         = 5
	minCallbacks       = 7
	minTriggerKeywords = 15
)

// Registry is a read-only catalogue of personas. It preserves registration
// order so downstream sorts stay stable against a fixed baseline.
type Registry struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]*Persona
	log    *slog.Logger
}

// NewRegistry builds a registry from the given definitions.
func NewRegistry(logger *slog.Logger, defs ...*Persona) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{byName: make(map[string]*Persona), log: logger}
	for _, p := range defs {
		r.register(p)
	}
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide catalogue of built-in personas,
// constructing it on first call.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry(slog.Default(), builtins()...)
	})
	return defaultReg
}

func builtins() []*Persona {
	return []*Persona{
		&ClaudeHopkins,
		&DavidOgilvy,
		&GaryHalbert,
		&MaryWellsLawrence,
	}
}

func (r *Registry) register(p *Persona) {
	if problems := Validate(p); len(problems) > 0 {
		r.log.Warn("persona failed validation, registering anyway",
			"persona", p.Name, "problems", problems)
	}
	if _, dup := r.byName[p.Name]; !dup {
		r.names = append(r.names, p.Name)
	}
	r.byName[p.Name] = p
	r.log.Info("registered persona", "persona", p.Name, "title", p.Title)
}

// Get returns the persona with the exact given name. No fuzzy matching.
func (r *Registry) Get(name string) (*Persona, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	return p, ok
}

// Names lists registered persona names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// All returns the personas in registration order.
func (r *Registry) All() []*Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Persona, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}

// Reload clears the catalogue and re-registers the built-in definitions.
// Development convenience, not a request-path operation.
func (r *Registry) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = nil
	r.byName = make(map[string]*Persona)
	for _, p := range builtins() {
		r.register(p)
	}
}

// Validate reports what keeps a persona from being considered well-formed.
// An empty slice means the persona passes.
func Validate(p *Persona) []string {
	var problems []string
	if p.Name == "" {
		problems = append(problems, "empty name")
	}
	if p.Title == "" {
		problems = append(problems, "empty title")
	}
	if len(p.Stories) < minStories {
		problems = append(problems, "too few stories")
	}
	if len(p.Callbacks) < minCallbacks {
		problems = append(problems, "too few callback phrases")
	}
	if len(p.PositiveKeywords) < minTriggerKeywords {
		problems = append(problems, "too few positive trigger keywords")
	}
	if len(p.NegativeKeywords) < minTriggerKeywords {
		problems = append(problems, "too few negative trigger keywords")
	}
	return problems
}
