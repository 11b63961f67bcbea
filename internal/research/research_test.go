package research

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mavenly/guru/internal/persona"
)

func TestPerplexityAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header, got %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"message": {"content": "retail media is growing"}}],
			"citations": ["https://example.com/report"]
		}`))
	}))
	defer srv.Close()

	c := NewPerplexityClient("test-key")
	c.endpoint = srv.URL

	findings, sources, err := c.Ask(context.Background(), "sys", "user q")
	if err != nil {
		t.Fatal(err)
	}
	if findings != "retail media is growing" {
		t.Fatalf("unexpected findings: %q", findings)
	}
	if len(sources) != 1 || sources[0] != "https://example.com/report" {
		t.Fatalf("unexpected sources: %v", sources)
	}
}

func TestPerplexityAskMissingKey(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "")
	c := NewPerplexityClient("")
	if _, _, err := c.Ask(context.Background(), "s", "u"); err == nil {
		t.Fatal("missing key must fail at first use")
	}
}

func TestPerplexityAskNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewPerplexityClient("k")
	c.endpoint = srv.URL
	if _, _, err := c.Ask(context.Background(), "s", "u"); err == nil {
		t.Fatal("non-200 must surface as an error")
	}
}

func TestTrendAnalysisRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": [{"message": {"content": "short-form video up"}}], "citations": []}`))
	}))
	defer srv.Close()

	c := NewPerplexityClient("k")
	c.endpoint = srv.URL
	tool := NewTrendAnalysis(c)

	res, err := tool.Run(context.Background(), "tiktok ads")
	if err != nil {
		t.Fatal(err)
	}
	if res.Tool != "trend_analysis" || res.Query != "tiktok ads" {
		t.Fatalf("bad result envelope: %+v", res)
	}
	if !strings.Contains(res.Findings, "short-form video") {
		t.Fatalf("findings not carried through: %q", res.Findings)
	}
}

func TestStoryBankMatches(t *testing.T) {
	tool := NewStoryBankTool(&persona.ClaudeHopkins)
	res, err := tool.Run(context.Background(), "coupon sampling campaign")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(res.Findings, "No matching case study") {
		t.Fatalf("expected matches for sampling/coupon, got %q", res.Findings)
	}
}

func TestStoryBankNoMatch(t *testing.T) {
	tool := NewStoryBankTool(&persona.ClaudeHopkins)
	res, err := tool.Run(context.Background(), "zzzz qqqq")
	if err != nil {
		t.Fatal(err)
	}
	if res.Findings != "No matching case study." {
		t.Fatalf("unexpected findings: %q", res.Findings)
	}
}

func TestUserMemoryToolNilStore(t *testing.T) {
	tool := NewUserMemoryTool(nil, slog.New(slog.DiscardHandler))
	res, err := tool.Run(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if res.Findings != "" || len(res.Sources) != 0 {
		t.Fatalf("nil store should degrade to empty result: %+v", res)
	}
}

func TestYouTubeClientUnconfigured(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	c := NewYouTubeClient("")
	if c.Configured() {
		t.Fatal("client without key must report unconfigured")
	}
	if _, err := c.Search(context.Background(), "q", 5); err == nil {
		t.Fatal("search without key must fail at first use")
	}
}
