// Package chat produces assistant turns for persona-driven conversations.
package chat

import (
	"context"
	"strings"

	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/research"
)

const maxReplyTokens = 2048

// Forwarder assembles the effective system prompt for one persona and
// forwards conversation turns to the completion API. It performs no
// recovery: any error from the API propagates to the caller unmodified.
type Forwarder struct {
	completer llm.Completer
	persona   *persona.Persona

	// PersonaContext is optional extra text appended to the rendered
	// system prompt, typically enrichment findings for this user.
	PersonaContext string

	// Tools contribute prompt-text blurbs only; nothing here invokes
	// them. The model signals a request via the [[tool: arg]] grammar
	// and the caller decides what to do with it.
	Tools []research.Tool
}

func NewForwarder(completer llm.Completer, p *persona.Persona) *Forwarder {
	return &Forwarder{completer: completer, persona: p}
}

// Chat sends the history plus one new user message and returns the
// assistant's text. The caller owns history ordering and role validity.
func (f *Forwarder) Chat(ctx context.Context, history []llm.Message, message, userID string) (string, error) {
	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: "user", Content: message})

	return f.completer.Complete(ctx, llm.Request{
		Model:     llm.ModelChat,
		System:    f.systemPrompt(userID),
		Messages:  msgs,
		MaxTokens: maxReplyTokens,
	})
}

func (f *Forwarder) systemPrompt(userID string) string {
	var b strings.Builder
	b.WriteString(persona.SystemPrompt(f.persona))

	if f.PersonaContext != "" {
		b.WriteString("\nADDITIONAL CONTEXT ABOUT THE USER'S MARKET:\n")
		b.WriteString(strings.TrimSpace(f.PersonaContext))
		b.WriteString("\n")
	}

	if len(f.Tools) > 0 {
		b.WriteString("\nRESEARCH TOOLS AVAILABLE TO YOU:\n")
		for _, t := range f.Tools {
			b.WriteString("- ")
			b.WriteString(t.Blurb())
			b.WriteString("\n")
		}
		b.WriteString("\nTo request a tool, reply with exactly one line of the form " +
			"[[tool_name: argument]] and nothing else. The result will be supplied " +
			"in the next user message. The current user id is " + userID + ".\n")
	}

	return b.String()
}
