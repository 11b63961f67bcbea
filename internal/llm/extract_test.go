package llm

import (
	"encoding/json"
	"testing"
)

func TestExtractObjectStrict(t *testing.T) {
	raw, ok := ExtractObject(`{"a": 1}`)
	if !ok {
		t.Fatal("strict parse should succeed")
	}
	var m map[string]int
	if err := json.Unmarshal(raw, &m); err != nil || m["a"] != 1 {
		t.Fatalf("bad object: %s (%v)", raw, err)
	}
}

func TestExtractObjectProseWrapped(t *testing.T) {
	raw, ok := ExtractObject(`Here is the result: {"a": 1} Thanks!`)
	if !ok {
		t.Fatal("brace-extraction fallback should recover the object")
	}
	var m map[string]int
	if err := json.Unmarshal(raw, &m); err != nil || m["a"] != 1 {
		t.Fatalf("bad object: %s (%v)", raw, err)
	}
}

func TestExtractObjectFenced(t *testing.T) {
	input := "Sure!\n```json\n{\"pain_points\": [\"churn\"]}\n```\nLet me know."
	var out struct {
		PainPoints []string `json:"pain_points"`
	}
	if !DecodeObject(input, &out) {
		t.Fatal("fenced object should decode")
	}
	if len(out.PainPoints) != 1 || out.PainPoints[0] != "churn" {
		t.Fatalf("unexpected decode: %+v", out)
	}
}

func TestExtractObjectGivesUp(t *testing.T) {
	for _, input := range []string{"", "no json here", "{broken", "[1, 2, 3]"} {
		if _, ok := ExtractObject(input); ok {
			t.Errorf("expected failure for %q", input)
		}
	}
}

func TestDecodeObjectLeavesOutUntouched(t *testing.T) {
	out := struct{ A int }{A: 7}
	if DecodeObject("nothing structured", &out) {
		t.Fatal("decode should report failure")
	}
	if out.A != 7 {
		t.Fatal("failed decode must not modify out")
	}
}
