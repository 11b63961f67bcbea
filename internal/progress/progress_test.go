package progress

import (
	"strings"
	"testing"
	"time"
)

func TestRenderBar(t *testing.T) {
	cases := []struct {
		pct   float64
		width int
		want  string
	}{
		{0, 4, "[....]"},
		{0.5, 4, "[##..]"},
		{1, 4, "[####]"},
		{-0.3, 4, "[....]"},
		{1.7, 4, "[####]"},
	}
	for _, tc := range cases {
		if got := renderBar(tc.pct, tc.width); got != tc.want {
			t.Errorf("renderBar(%v, %d) = %q, want %q", tc.pct, tc.width, got, tc.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61 * time.Second, "1:01"},
		{10 * time.Minute, "10:00"},
	}
	for _, tc := range cases {
		if got := formatElapsed(tc.d); got != tc.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestPlainRendering(t *testing.T) {
	var buf strings.Builder
	r := &BarRenderer{out: &buf, start: time.Now(), isTTY: false, width: 80}

	r.Handle(Event{Stage: StageAudience, Message: "Researching audience communities", Percent: 0.05})
	r.Handle(Event{Stage: StageModules, Message: "Generating psychographic_core (1/3)", Percent: 0.4})

	out := buf.String()
	if !strings.Contains(out, "Researching audience communities") {
		t.Fatalf("stage message missing from plain output: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("plain mode should print one line per event, got %q", out)
	}
}

func TestCompleteForcesFullBar(t *testing.T) {
	var buf strings.Builder
	r := &BarRenderer{out: &buf, start: time.Now(), isTTY: false, width: 80}

	r.Handle(Event{Stage: StageComplete, Message: "Enrichment complete", Percent: 0.2})
	if r.lastEvent.Percent != 1.0 {
		t.Fatalf("complete stage must force 100%%, got %v", r.lastEvent.Percent)
	}
}
