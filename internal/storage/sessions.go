package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a play session in the database.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	ScrambleText *string
	MoveCount    int
	Solved       bool
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create records the start of a session and returns its ID.
func (r *SessionRepository) Create(scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble_text)
		VALUES (?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), scramblePtr)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Finish marks a session as complete.
func (r *SessionRepository) Finish(sessionID string, duration time.Duration, moveCount int, solved bool) error {
	endedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, move_count = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), duration.Milliseconds(), moveCount, boolToInt(solved), sessionID)
	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check finish result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	return nil
}

// BestTimes returns finished, solved sessions ordered fastest first.
func (r *SessionRepository) BestTimes(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, duration_ms, scramble_text, move_count, solved
		FROM sessions
		WHERE solved = 1 AND duration_ms IS NOT NULL
		ORDER BY duration_ms ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query best times: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// Recent returns the most recently started sessions.
func (r *SessionRepository) Recent(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, duration_ms, scramble_text, move_count, solved
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var s Session
		var startedAt string
		var endedAt *string
		var solved int

		if err := rows.Scan(&s.SessionID, &startedAt, &endedAt, &s.DurationMs, &s.ScrambleText, &s.MoveCount, &solved); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		t, err := time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		s.StartedAt = t

		if endedAt != nil {
			t, err := time.Parse(time.RFC3339, *endedAt)
			if err != nil {
				return nil, fmt.Errorf("failed to parse ended_at: %w", err)
			}
			s.EndedAt = &t
		}

		s.Solved = solved != 0
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
