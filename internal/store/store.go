// Package store is the data layer: SQLite persistence for persona
// enrichment records and per-user memory.
//
// Enrichment columns are independent JSON blobs updated one at a time;
// there is deliberately no transaction spanning pipeline stages, so a run
// that dies mid-way leaves whatever it already wrote.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// Enrichment JSON columns. UpdateColumn refuses anything not listed here;
// column names are interpolated into SQL and must never come from input.
const (
	ColRedditInsights   = "reddit_insights"
	ColYouTubeResearch  = "youtube_research"
	ColVideoInsights    = "video_insights"
	ColPainPoints       = "pain_points"
	ColGoals            = "goals"
	ColValues           = "values"
	ColCommunities      = "communities"

	ColPsychographicCore     = "psychographic_core"
	ColBuyerJourney          = "buyer_journey"
	ColBehavioralProfile     = "behavioral_profile"
	ColLanguageCommunication = "language_communication"
	ColStrategicInsights     = "strategic_insights"
	ColJobsToBeDone          = "jobs_to_be_done"
	ColDecisionProfile       = "decision_profile"
	ColCopyExamples          = "copy_examples"
)

var jsonColumns = map[string]bool{
	ColRedditInsights:        true,
	ColYouTubeResearch:       true,
	ColVideoInsights:         true,
	ColPainPoints:            true,
	ColGoals:                 true,
	ColValues:                true,
	ColCommunities:           true,
	ColPsychographicCore:     true,
	ColBuyerJourney:          true,
	ColBehavioralProfile:     true,
	ColLanguageCommunication: true,
	ColStrategicInsights:     true,
	ColJobsToBeDone:          true,
	ColDecisionProfile:       true,
	ColCopyExamples:          true,
}

// Store wraps the SQLite database. Safe for concurrent use; individual
// statements are atomic, sequences are not.
type Store struct {
	db *sql.DB
}

// Open creates (or opens) the SQLite database at path and applies the
// schema. ":memory:" is accepted for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS persona_enrichment (
		id TEXT PRIMARY KEY,
		reddit_insights TEXT,
		youtube_research TEXT,
		video_insights TEXT,
		psychographic_core TEXT,
		buyer_journey TEXT,
		behavioral_profile TEXT,
		language_communication TEXT,
		strategic_insights TEXT,
		jobs_to_be_done TEXT,
		decision_profile TEXT,
		copy_examples TEXT,
		pain_points TEXT,
		goals TEXT,
		"values" TEXT,
		communities TEXT,
		research_completeness INTEGER DEFAULT 0,
		updated_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS user_profiles (
		user_id TEXT PRIMARY KEY,
		profile TEXT NOT NULL,
		updated_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS user_insights (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		insight TEXT NOT NULL,
		created_at DATETIME
	);
	CREATE INDEX IF NOT EXISTS idx_user_insights_user ON user_insights(user_id);

	CREATE TABLE IF NOT EXISTS user_sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		persona TEXT,
		summary TEXT,
		started_at DATETIME
	);
	CREATE INDEX IF NOT EXISTS idx_user_sessions_user ON user_sessions(user_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// EnsureRecord inserts an empty enrichment row if none exists. The upstream
// product creates rows out of band; the CLI uses this to seed one locally.
func (s *Store) EnsureRecord(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO persona_enrichment (id, updated_at) VALUES (?, ?)`,
		id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("ensure enrichment record %s: %w", id, err)
	}
	return nil
}

// UpdateColumn marshals v and writes it to one JSON column of one record.
// Each call is a single independent UPDATE.
func (s *Store) UpdateColumn(ctx context.Context, id, column string, v any) error {
	if !jsonColumns[column] {
		return fmt.Errorf("unknown enrichment column %q", column)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", column, err)
	}
	q := fmt.Sprintf(`UPDATE persona_enrichment SET %q = ?, updated_at = ? WHERE id = ?`, column)
	res, err := s.db.ExecContext(ctx, q, string(data), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update %s for %s: %w", column, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no enrichment record with id %s", id)
	}
	return nil
}

// BaseFields is the final-stage payload written in one statement.
type BaseFields struct {
	PainPoints  []string `json:"pain_points"`
	Goals       []string `json:"goals"`
	Values      []string `json:"values"`
	Communities []string `json:"communities"`
}

// FinishBaseFields writes the four base-field columns and the completeness
// flag in a single UPDATE.
func (s *Store) FinishBaseFields(ctx context.Context, id string, base BaseFields, completeness int) error {
	pp, _ := json.Marshal(base.PainPoints)
	gl, _ := json.Marshal(base.Goals)
	vl, _ := json.Marshal(base.Values)
	cm, _ := json.Marshal(base.Communities)

	res, err := s.db.ExecContext(ctx, `
		UPDATE persona_enrichment
		SET pain_points = ?, goals = ?, "values" = ?, communities = ?,
		    research_completeness = ?, updated_at = ?
		WHERE id = ?`,
		string(pp), string(gl), string(vl), string(cm),
		completeness, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("finish base fields for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no enrichment record with id %s", id)
	}
	return nil
}

// Record is a read-back of one enrichment row. JSON columns come back raw;
// NULL columns are nil.
type Record struct {
	ID           string
	Columns      map[string]json.RawMessage
	Completeness int
	UpdatedAt    time.Time
}

var recordColumns = []string{
	ColRedditInsights, ColYouTubeResearch, ColVideoInsights,
	ColPsychographicCore, ColBuyerJourney, ColBehavioralProfile,
	ColLanguageCommunication, ColStrategicInsights, ColJobsToBeDone,
	ColDecisionProfile, ColCopyExamples,
	ColPainPoints, ColGoals, ColValues, ColCommunities,
}

// GetRecord reads one enrichment row, or (nil, nil) when absent.
func (s *Store) GetRecord(ctx context.Context, id string) (*Record, error) {
	q := `SELECT reddit_insights, youtube_research, video_insights,
		psychographic_core, buyer_journey, behavioral_profile,
		language_communication, strategic_insights, jobs_to_be_done,
		decision_profile, copy_examples,
		pain_points, goals, "values", communities,
		research_completeness, updated_at
	FROM persona_enrichment WHERE id = ?`

	vals := make([]sql.NullString, len(recordColumns))
	dest := make([]any, 0, len(recordColumns)+2)
	for i := range vals {
		dest = append(dest, &vals[i])
	}
	var completeness sql.NullInt64
	var updated sql.NullTime
	dest = append(dest, &completeness, &updated)

	err := s.db.QueryRowContext(ctx, q, id).Scan(dest...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get enrichment record %s: %w", id, err)
	}

	rec := &Record{ID: id, Columns: make(map[string]json.RawMessage)}
	for i, col := range recordColumns {
		if vals[i].Valid {
			rec.Columns[col] = json.RawMessage(vals[i].String)
		}
	}
	rec.Completeness = int(completeness.Int64)
	if updated.Valid {
		rec.UpdatedAt = updated.Time
	}
	return rec, nil
}
