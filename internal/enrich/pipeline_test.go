package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/profile"
	"github.com/mavenly/guru/internal/research"
	"github.com/mavenly/guru/internal/store"
)

type fakeCompleter struct {
	replies map[string]string // matched by substring of the user message
	err     error
	calls   []llm.Request
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	user := req.Messages[len(req.Messages)-1].Content
	for needle, reply := range f.replies {
		if strings.Contains(user, needle) {
			return reply, nil
		}
	}
	return "{}", nil
}

type fakeSearch struct {
	reply string
	err   error
	calls int
}

func (f *fakeSearch) Ask(ctx context.Context, system, user string) (string, []string, error) {
	f.calls++
	return f.reply, nil, f.err
}

type fakeVideo struct {
	configured bool
	videos     []research.Video
	err        error
	queries    []string
}

func (f *fakeVideo) Configured() bool { return f.configured }

func (f *fakeVideo) Search(ctx context.Context, query string, max int64) ([]research.Video, error) {
	f.queries = append(f.queries, query)
	return f.videos, f.err
}

type columnWrite struct {
	column string
	value  any
}

type fakeRecorder struct {
	writes       []columnWrite
	base         *store.BaseFields
	completeness int
	failWrites   bool
}

func (f *fakeRecorder) UpdateColumn(ctx context.Context, id, column string, v any) error {
	f.writes = append(f.writes, columnWrite{column: column, value: v})
	if f.failWrites {
		return errors.New("disk full")
	}
	return nil
}

func (f *fakeRecorder) FinishBaseFields(ctx context.Context, id string, base store.BaseFields, completeness int) error {
	f.base = &base
	f.completeness = completeness
	if f.failWrites {
		return errors.New("disk full")
	}
	return nil
}

func (f *fakeRecorder) columns() []string {
	out := make([]string, len(f.writes))
	for i, w := range f.writes {
		out[i] = w.column
	}
	return out
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func testProfile() profile.BusinessProfile {
	return profile.BusinessProfile{
		CompanyName:    "Glowline",
		Industry:       "skincare",
		TargetAudience: "women 25-40",
		PrimaryGoal:    "growth",
		MainChallenge:  "low repeat purchases",
		MainProducts:   "vitamin C serum",
	}
}

func TestRunSurvivesAllExternalFailures(t *testing.T) {
	rec := &fakeRecorder{}
	p := NewPipeline(
		&fakeCompleter{err: errors.New("api down")},
		&fakeSearch{err: errors.New("api down")},
		&fakeVideo{configured: true, err: errors.New("quota exceeded")},
		rec, discard())

	res := p.Run(context.Background(), "rec1", testProfile(), LevelQuick)

	if res == nil {
		t.Fatal("run must always return a result")
	}
	if res.Audience.Sentiment.Overall != "neutral" {
		t.Fatalf("failed research must leave the neutral default, got %q", res.Audience.Sentiment.Overall)
	}
	if len(res.Videos) != 0 || len(res.VideoInsights) != 0 {
		t.Fatal("failed video research must leave empty defaults")
	}
	for _, m := range res.Modules {
		if string(m) != "{}" {
			t.Fatalf("failed module must be an empty object, got %s", m)
		}
	}

	// Every stage still writes its column: audience, videos, video
	// insights, then one per quick-level module.
	want := []string{
		store.ColRedditInsights,
		store.ColYouTubeResearch,
		store.ColVideoInsights,
		store.ColPsychographicCore,
		store.ColBuyerJourney,
		store.ColBehavioralProfile,
	}
	got := rec.columns()
	if len(got) != len(want) {
		t.Fatalf("expected %d column writes, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("write %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if rec.base == nil {
		t.Fatal("base fields must be written even when everything failed")
	}
	if rec.completeness != 100 {
		t.Fatalf("completeness must be 100 after a finished run, got %d", rec.completeness)
	}
}

func TestRunSurvivesWriteFailures(t *testing.T) {
	rec := &fakeRecorder{failWrites: true}
	p := NewPipeline(&fakeCompleter{}, &fakeSearch{reply: "{}"}, &fakeVideo{}, rec, discard())

	res := p.Run(context.Background(), "rec1", testProfile(), LevelQuick)
	if res == nil {
		t.Fatal("write failures must not abort the run")
	}
}

func TestModuleCountPerLevel(t *testing.T) {
	cases := []struct {
		level Level
		want  int
	}{
		{LevelQuick, 3},
		{LevelStrategic, 6},
		{LevelComplete, 8},
		{Level("bogus"), 3},
	}
	for _, tc := range cases {
		rec := &fakeRecorder{}
		p := NewPipeline(&fakeCompleter{}, &fakeSearch{err: errors.New("skip")}, &fakeVideo{}, rec, discard())
		res := p.Run(context.Background(), "rec1", testProfile(), tc.level)
		if len(res.Modules) != tc.want {
			t.Errorf("level %s: expected %d modules, got %d", tc.level, tc.want, len(res.Modules))
		}
	}
}

func TestModulesWrittenImmediatelyInOrder(t *testing.T) {
	rec := &fakeRecorder{}
	p := NewPipeline(&fakeCompleter{}, &fakeSearch{err: errors.New("skip")}, &fakeVideo{}, rec, discard())
	p.Run(context.Background(), "rec1", testProfile(), LevelComplete)

	var moduleWrites []string
	for _, w := range rec.writes {
		for _, m := range moduleOrder {
			if w.column == m {
				moduleWrites = append(moduleWrites, w.column)
			}
		}
	}
	if len(moduleWrites) != 8 {
		t.Fatalf("expected 8 module writes, got %d", len(moduleWrites))
	}
	for i, m := range moduleOrder {
		if moduleWrites[i] != m {
			t.Fatalf("module write %d: expected %s, got %s", i, m, moduleWrites[i])
		}
	}
}

func TestAudienceResearchParsed(t *testing.T) {
	reply := `Here is what I found: {"pain_points": ["churn"], "goals": ["retention"], "sentiment": {"overall": "frustrated", "drivers": ["price hikes"]}}`
	rec := &fakeRecorder{}
	p := NewPipeline(&fakeCompleter{}, &fakeSearch{reply: reply}, &fakeVideo{}, rec, discard())

	res := p.Run(context.Background(), "rec1", testProfile(), LevelQuick)

	if len(res.Audience.PainPoints) != 1 || res.Audience.PainPoints[0] != "churn" {
		t.Fatalf("pain points not parsed: %v", res.Audience.PainPoints)
	}
	if res.Audience.Sentiment.Overall != "frustrated" {
		t.Fatalf("sentiment not parsed: %+v", res.Audience.Sentiment)
	}
	// Keys the response did not carry keep their defaults.
	if res.Audience.Communities == nil || len(res.Audience.Communities) != 0 {
		t.Fatalf("missing keys must keep defaults, got %v", res.Audience.Communities)
	}
}

func TestVideoResearchIssuesTwoQueries(t *testing.T) {
	vid := &fakeVideo{configured: true, videos: []research.Video{{ID: "v1", Title: "Skincare trends", Channel: "GlowTV", Views: 1000}}}
	comp := &fakeCompleter{replies: map[string]string{"insights about what content works": `{"insights": ["short form wins"]}`}}
	rec := &fakeRecorder{}
	p := NewPipeline(comp, &fakeSearch{err: errors.New("skip")}, vid, rec, discard())

	res := p.Run(context.Background(), "rec1", testProfile(), LevelQuick)

	if len(vid.queries) != 2 {
		t.Fatalf("expected 2 search queries, got %d: %v", len(vid.queries), vid.queries)
	}
	if vid.queries[0] != "skincare marketing strategy" {
		t.Fatalf("first query wrong: %q", vid.queries[0])
	}
	if vid.queries[1] != "women 25-40 buyer persona" {
		t.Fatalf("second query wrong: %q", vid.queries[1])
	}
	if len(res.Videos) != 2 {
		t.Fatalf("expected results from both queries, got %d videos", len(res.Videos))
	}
	if len(res.VideoInsights) != 1 || res.VideoInsights[0] != "short form wins" {
		t.Fatalf("insights not parsed: %v", res.VideoInsights)
	}
}

func TestVideoSummarySkippedWithoutVideos(t *testing.T) {
	comp := &fakeCompleter{}
	p := NewPipeline(comp, &fakeSearch{err: errors.New("skip")},
		&fakeVideo{configured: true}, &fakeRecorder{}, discard())

	p.Run(context.Background(), "rec1", testProfile(), LevelQuick)

	for _, call := range comp.calls {
		user := call.Messages[len(call.Messages)-1].Content
		if strings.Contains(user, "insights about what content works") {
			t.Fatal("summarization must not run with zero videos found")
		}
	}
}

func TestVideoResearchSkippedWhenUnconfigured(t *testing.T) {
	vid := &fakeVideo{configured: false}
	rec := &fakeRecorder{}
	p := NewPipeline(&fakeCompleter{}, &fakeSearch{err: errors.New("skip")}, vid, rec, discard())

	res := p.Run(context.Background(), "rec1", testProfile(), LevelQuick)

	if len(vid.queries) != 0 {
		t.Fatal("no searches should be issued without an API key")
	}
	if len(res.Videos) != 0 {
		t.Fatal("videos must stay empty when research was skipped")
	}
	// The empty defaults are still written.
	for _, want := range []string{store.ColYouTubeResearch, store.ColVideoInsights} {
		found := false
		for _, c := range rec.columns() {
			if c == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s must be written even when research was skipped", want)
		}
	}
}

func TestBaseFieldsSkipBackfillWhenComplete(t *testing.T) {
	points := make([]string, 8)
	goals := make([]string, 8)
	for i := range points {
		points[i] = fmt.Sprintf("pain %d", i)
		goals[i] = fmt.Sprintf("goal %d", i)
	}
	reply := fmt.Sprintf(`{"pain_points": %s, "goals": %s}`, listJSON(points), listJSON(goals))

	comp := &fakeCompleter{err: errors.New("llm must not be needed here")}
	rec := &fakeRecorder{}
	p := NewPipeline(comp, &fakeSearch{reply: reply}, &fakeVideo{}, rec, discard())

	res := p.Run(context.Background(), "rec1", testProfile(), LevelQuick)

	if len(res.Base.PainPoints) != 8 || len(res.Base.Goals) != 8 {
		t.Fatalf("research findings must pass through: %d/%d", len(res.Base.PainPoints), len(res.Base.Goals))
	}
	if res.Base.PainPoints[0] != "pain 0" {
		t.Fatalf("findings must be untouched, got %q", res.Base.PainPoints[0])
	}
}

func TestBaseFieldsBackfilledWhenSparse(t *testing.T) {
	comp := &fakeCompleter{replies: map[string]string{
		"Complete each list": `{"pain_points": ["a", "b"], "goals": ["c"], "values": ["d"], "communities": ["e"]}`,
	}}
	rec := &fakeRecorder{}
	p := NewPipeline(comp, &fakeSearch{reply: `{"pain_points": ["a"]}`}, &fakeVideo{}, rec, discard())

	res := p.Run(context.Background(), "rec1", testProfile(), LevelQuick)

	if len(res.Base.PainPoints) != 2 || len(res.Base.Goals) != 1 {
		t.Fatalf("backfill result must replace the sparse findings: %+v", res.Base)
	}
	if rec.base == nil || len(rec.base.PainPoints) != 2 {
		t.Fatalf("backfilled fields must be what gets persisted: %+v", rec.base)
	}
}

func listJSON(items []string) string {
	var b strings.Builder
	b.WriteString("[")
	for i, s := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", s)
	}
	b.WriteString("]")
	return b.String()
}
