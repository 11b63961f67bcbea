package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mavenly/guru/internal/enrich"
	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/profile"
	"github.com/mavenly/guru/internal/store"
)

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	return f.reply, f.err
}

type runCall struct {
	recordID string
	profile  profile.BusinessProfile
	level    enrich.Level
}

type fakeRunner struct {
	calls chan runCall
}

func (f *fakeRunner) Run(ctx context.Context, recordID string, bp profile.BusinessProfile, level enrich.Level) *enrich.Results {
	f.calls <- runCall{recordID: recordID, profile: bp, level: level}
	return &enrich.Results{}
}

type fakeRecords struct {
	ensured []string
	rec     *store.Record
	err     error
}

func (f *fakeRecords) EnsureRecord(ctx context.Context, id string) error {
	f.ensured = append(f.ensured, id)
	return f.err
}

func (f *fakeRecords) GetRecord(ctx context.Context, id string) (*store.Record, error) {
	return f.rec, f.err
}

func newTestServer(completer llm.Completer, runner enrichRunner, records recordKeeper) *Server {
	log := slog.New(slog.DiscardHandler)
	reg := persona.NewRegistry(log, &persona.ClaudeHopkins, &persona.DavidOgilvy,
		&persona.GaryHalbert, &persona.MaryWellsLawrence)
	return NewServer(reg, completer, runner, records, log)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&fakeCompleter{}, &fakeRunner{}, &fakeRecords{})
	w := doJSON(t, srv, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestListPersonas(t *testing.T) {
	srv := newTestServer(&fakeCompleter{}, &fakeRunner{}, &fakeRecords{})
	w := doJSON(t, srv, http.MethodGet, "/api/personas", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Personas []struct {
			Name  string `json:"name"`
			Title string `json:"title"`
		} `json:"personas"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Personas) != 4 {
		t.Fatalf("expected 4 personas, got %d", len(resp.Personas))
	}
	if resp.Personas[0].Name != "Claude Hopkins" {
		t.Fatalf("catalogue order must be preserved, got %q first", resp.Personas[0].Name)
	}
	for _, p := range resp.Personas {
		if p.Title == "" {
			t.Fatalf("persona %s missing title", p.Name)
		}
	}
}

func TestRecommendations(t *testing.T) {
	srv := newTestServer(&fakeCompleter{}, &fakeRunner{}, &fakeRecords{})
	body := `{"profile": {"primary_goal": "growth", "industry": "ecommerce"}, "top_n": 2}`
	w := doJSON(t, srv, http.MethodPost, "/api/recommendations", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Recommendations []struct {
			Persona string `json:"persona"`
			Score   int    `json:"score"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Recommendations) != 2 {
		t.Fatalf("top_n must truncate, got %d", len(resp.Recommendations))
	}
	if resp.Recommendations[0].Persona != "Claude Hopkins" {
		t.Fatalf("growth + ecommerce should rank Hopkins first, got %q", resp.Recommendations[0].Persona)
	}
	if resp.Recommendations[0].Score < resp.Recommendations[1].Score {
		t.Fatal("results must be sorted best-first")
	}
}

func TestChat(t *testing.T) {
	srv := newTestServer(&fakeCompleter{reply: "Test your headline."}, &fakeRunner{}, &fakeRecords{})
	body := `{"persona": "Claude Hopkins", "message": "how do I grow?", "user_id": "u1"}`
	w := doJSON(t, srv, http.MethodPost, "/api/chat", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Reply string `json:"reply"`
		Tool  string `json:"tool"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reply != "Test your headline." {
		t.Fatalf("reply must pass through verbatim, got %q", resp.Reply)
	}
	if resp.Tool != "" {
		t.Fatalf("plain reply must carry no tool, got %q", resp.Tool)
	}
}

func TestChatSurfacesToolRequest(t *testing.T) {
	srv := newTestServer(&fakeCompleter{reply: "Let me look.\n[[trend_analysis: retail media]]"},
		&fakeRunner{}, &fakeRecords{})
	body := `{"persona": "Claude Hopkins", "message": "what is trending?"}`
	w := doJSON(t, srv, http.MethodPost, "/api/chat", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Reply    string `json:"reply"`
		Tool     string `json:"tool"`
		Argument string `json:"argument"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Tool != "trend_analysis" || resp.Argument != "retail media" {
		t.Fatalf("tool request not surfaced: %+v", resp)
	}
	if resp.Reply != "Let me look." {
		t.Fatalf("surrounding prose must be kept, got %q", resp.Reply)
	}
}

func TestChatUnknownPersona(t *testing.T) {
	srv := newTestServer(&fakeCompleter{reply: "ok"}, &fakeRunner{}, &fakeRecords{})
	body := `{"persona": "Don Draper", "message": "hi"}`
	w := doJSON(t, srv, http.MethodPost, "/api/chat", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown persona, got %d", w.Code)
	}
}

func TestChatMissingFields(t *testing.T) {
	srv := newTestServer(&fakeCompleter{reply: "ok"}, &fakeRunner{}, &fakeRecords{})
	w := doJSON(t, srv, http.MethodPost, "/api/chat", `{"persona": "Claude Hopkins"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing message, got %d", w.Code)
	}
}

func TestChatCompletionFailure(t *testing.T) {
	srv := newTestServer(&fakeCompleter{err: errors.New("overloaded")}, &fakeRunner{}, &fakeRecords{})
	body := `{"persona": "Claude Hopkins", "message": "hi"}`
	w := doJSON(t, srv, http.MethodPost, "/api/chat", body)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 on completion failure, got %d", w.Code)
	}
}

func TestEnrichStartsPipelineInBackground(t *testing.T) {
	runner := &fakeRunner{calls: make(chan runCall, 1)}
	records := &fakeRecords{}
	srv := newTestServer(&fakeCompleter{}, runner, records)

	body := `{"profile": {"industry": "skincare"}, "level": "strategic"}`
	w := doJSON(t, srv, http.MethodPost, "/api/personas/rec42/enrich", body)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
	if len(records.ensured) != 1 || records.ensured[0] != "rec42" {
		t.Fatalf("record must be seeded before the pipeline starts: %v", records.ensured)
	}

	select {
	case call := <-runner.calls:
		if call.recordID != "rec42" {
			t.Fatalf("pipeline got wrong record id: %q", call.recordID)
		}
		if call.level != enrich.LevelStrategic {
			t.Fatalf("pipeline got wrong level: %q", call.level)
		}
		if call.profile.Industry != "skincare" {
			t.Fatalf("profile not forwarded: %+v", call.profile)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline was never started")
	}
}

func TestEnrichDefaultsToQuick(t *testing.T) {
	runner := &fakeRunner{calls: make(chan runCall, 1)}
	srv := newTestServer(&fakeCompleter{}, runner, &fakeRecords{})

	w := doJSON(t, srv, http.MethodPost, "/api/personas/rec1/enrich", `{"profile": {}}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
	select {
	case call := <-runner.calls:
		if call.level != enrich.LevelQuick {
			t.Fatalf("missing level must default to quick, got %q", call.level)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline was never started")
	}
}

func TestGetEnrichment(t *testing.T) {
	records := &fakeRecords{rec: &store.Record{
		ID:           "rec1",
		Columns:      map[string]json.RawMessage{store.ColGoals: json.RawMessage(`["grow"]`)},
		Completeness: 100,
	}}
	srv := newTestServer(&fakeCompleter{}, &fakeRunner{}, records)

	w := doJSON(t, srv, http.MethodGet, "/api/personas/rec1/enrichment", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Completeness int `json:"completeness"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Completeness != 100 {
		t.Fatalf("completeness not returned, got %d", resp.Completeness)
	}
}

func TestGetEnrichmentAbsent(t *testing.T) {
	srv := newTestServer(&fakeCompleter{}, &fakeRunner{}, &fakeRecords{})
	w := doJSON(t, srv, http.MethodGet, "/api/personas/nope/enrichment", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for absent record, got %d", w.Code)
	}
}
