package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mavenly/guru/internal/store"
)

// UserMemoryTool surfaces what the system remembers about a user: stored
// profile, collected insights, past session summaries. Unlike the network
// tools it degrades to an empty result on store failure instead of raising;
// a chat turn should not die because local history is unreadable.
type UserMemoryTool struct {
	store *store.Store
	log   *slog.Logger
}

func NewUserMemoryTool(st *store.Store, logger *slog.Logger) *UserMemoryTool {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserMemoryTool{store: st, log: logger}
}

func (u *UserMemoryTool) Name() string { return "user_memory" }

func (u *UserMemoryTool) Blurb() string {
	return "user_memory: recalls the user's stored business profile, remembered facts, and past " +
		"conversation summaries. Request it when the user refers to earlier sessions or when " +
		"personalizing advice. Takes the user id as its argument."
}

func (u *UserMemoryTool) Run(ctx context.Context, userID string) (*Result, error) {
	empty := &Result{Tool: u.Name(), Query: userID, Findings: "", Sources: []string{}}
	if u.store == nil {
		return empty, nil
	}

	mem, err := u.store.GetUserMemory(ctx, userID)
	if err != nil {
		u.log.Warn("user memory unavailable", "user_id", userID, "error", err)
		return empty, nil
	}

	var b strings.Builder
	if len(mem.Profile) > 0 {
		fmt.Fprintf(&b, "Stored profile: %s\n", mem.Profile)
	}
	if len(mem.Insights) > 0 {
		b.WriteString("Remembered about this user:\n")
		for _, in := range mem.Insights {
			fmt.Fprintf(&b, "- %s\n", in)
		}
	}
	if len(mem.Sessions) > 0 {
		b.WriteString("Past sessions:\n")
		for _, s := range mem.Sessions {
			fmt.Fprintf(&b, "- with %s: %s\n", s.Persona, s.Summary)
		}
	}
	return &Result{Tool: u.Name(), Query: userID, Findings: b.String(), Sources: []string{}}, nil
}
