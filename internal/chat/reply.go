package chat

import (
	"regexp"
	"strings"
)

// ReplyKind discriminates the two things an assistant turn can be.
type ReplyKind int

const (
	ReplyText ReplyKind = iota
	ReplyToolRequest
)

// Reply is the parsed form of an assistant turn: either plain text for the
// user, or a request to run one named tool with one string argument.
type Reply struct {
	Kind     ReplyKind
	Text     string
	Tool     string
	Argument string
}

var toolRequestRe = regexp.MustCompile(`\[\[([a-z][a-z0-9_]*):\s*([^\]]+)\]\]`)

// ParseReply classifies raw assistant output. A [[tool_name: argument]] tag
// anywhere in the text makes it a tool request; any surrounding prose is
// preserved in Text so the caller can still show it. Output without a tag
// is plain text verbatim.
func ParseReply(raw string) Reply {
	m := toolRequestRe.FindStringSubmatchIndex(raw)
	if m == nil {
		return Reply{Kind: ReplyText, Text: raw}
	}

	tool := raw[m[2]:m[3]]
	arg := strings.TrimSpace(raw[m[4]:m[5]])
	rest := strings.TrimSpace(raw[:m[0]] + raw[m[1]:])

	return Reply{
		Kind:     ReplyToolRequest,
		Text:     rest,
		Tool:     tool,
		Argument: arg,
	}
}
