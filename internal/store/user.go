package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// UserMemory is what the memory tool hands to prompt assembly: the stored
// profile plus recent insights and session summaries.
type UserMemory struct {
	Profile  json.RawMessage `json:"profile,omitempty"`
	Insights []string        `json:"insights"`
	Sessions []SessionNote   `json:"sessions"`
}

// SessionNote is one past conversation summary.
type SessionNote struct {
	Persona   string    `json:"persona"`
	Summary   string    `json:"summary"`
	StartedAt time.Time `json:"started_at"`
}

// SaveUserProfile upserts the stored profile JSON for a user.
func (s *Store) SaveUserProfile(ctx context.Context, userID string, profile any) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal user profile: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, profile, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at`,
		userID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save user profile %s: %w", userID, err)
	}
	return nil
}

// AddUserInsight appends one remembered fact about a user.
func (s *Store) AddUserInsight(ctx context.Context, userID, insight string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_insights (user_id, insight, created_at) VALUES (?, ?, ?)`,
		userID, insight, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("add user insight %s: %w", userID, err)
	}
	return nil
}

// AddSession records a conversation summary.
func (s *Store) AddSession(ctx context.Context, userID, personaName, summary string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_sessions (user_id, persona, summary, started_at) VALUES (?, ?, ?, ?)`,
		userID, personaName, summary, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("add session %s: %w", userID, err)
	}
	return nil
}

// GetUserMemory reads everything remembered about a user. A user with no
// rows anywhere gets an empty (not nil-slices-only) structure, never an
// error for mere absence.
func (s *Store) GetUserMemory(ctx context.Context, userID string) (*UserMemory, error) {
	mem := &UserMemory{Insights: []string{}, Sessions: []SessionNote{}}

	var profileJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT profile FROM user_profiles WHERE user_id = ?`, userID).Scan(&profileJSON)
	if err == nil {
		mem.Profile = json.RawMessage(profileJSON)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT insight FROM user_insights WHERE user_id = ? ORDER BY id DESC LIMIT 20`, userID)
	if err != nil {
		return nil, fmt.Errorf("load insights %s: %w", userID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var in string
		if err := rows.Scan(&in); err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}
		mem.Insights = append(mem.Insights, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate insights: %w", err)
	}

	srows, err := s.db.QueryContext(ctx,
		`SELECT persona, summary, started_at FROM user_sessions WHERE user_id = ? ORDER BY id DESC LIMIT 10`, userID)
	if err != nil {
		return nil, fmt.Errorf("load sessions %s: %w", userID, err)
	}
	defer srows.Close()
	for srows.Next() {
		var note SessionNote
		if err := srows.Scan(&note.Persona, &note.Summary, &note.StartedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		mem.Sessions = append(mem.Sessions, note)
	}
	if err := srows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return mem, nil
}
