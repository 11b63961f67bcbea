package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ExtractObject recovers a JSON object from possibly prose-wrapped model
// output. Recovery is strict-then-lenient: direct parse, then markdown
// fence stripping, then the first '{' to the last '}'. The second return
// is false when no object could be recovered; callers treat that as the
// empty-result sentinel, never as an error.
func ExtractObject(text string) (json.RawMessage, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	if raw, ok := tryObject(text); ok {
		return raw, true
	}
	if raw, ok := tryObject(stripFences(text)); ok {
		return raw, true
	}
	if raw, ok := tryObject(braceSpan(text)); ok {
		return raw, true
	}
	return nil, false
}

// DecodeObject unmarshals a recovered object into out. False means out was
// left untouched.
func DecodeObject(text string, out any) bool {
	raw, ok := ExtractObject(text)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func tryObject(text string) (json.RawMessage, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return nil, false
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, false
	}
	return json.RawMessage(text), true
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\n?(.*?)\n?```")

func stripFences(text string) string {
	if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
		return m[1]
	}
	return text
}

func braceSpan(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return ""
}
