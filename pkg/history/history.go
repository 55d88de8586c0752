// Package history journals the lines executed by a shell session in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// OutcomeOK is stored for lines that ran without error.
const OutcomeOK = "ok"

// Entry is one executed line.
type Entry struct {
	ID        int64     `json:"id"`
	Session   string    `json:"session"`
	Line      string    `json:"line"`
	Outcome   string    `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// Store appends entries for a single session, identified by a fresh UUID.
// The session row is written with the first entry, so a Store opened only to
// read leaves no trace.
type Store struct {
	db      *sql.DB
	session string
	started bool
}

// Open opens (or creates) the journal at path and starts a new session.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		started_at DATETIME
	);
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT,
		line TEXT,
		outcome TEXT,
		timestamp DATETIME,
		FOREIGN KEY(session_id) REFERENCES sessions(id)
	);
	`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history tables: %w", err)
	}

	return &Store{db: db, session: uuid.New().String()}, nil
}

// Session returns the ID of the session entries are recorded under.
func (s *Store) Session() string {
	return s.session
}

// Record appends line with the outcome of running it.
func (s *Store) Record(ctx context.Context, line string, runErr error) error {
	if !s.started {
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO sessions (id, started_at) VALUES (?, ?)", s.session, time.Now(),
		); err != nil {
			return fmt.Errorf("failed to start history session: %w", err)
		}
		s.started = true
	}

	outcome := OutcomeOK
	if runErr != nil {
		outcome = runErr.Error()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO entries (session_id, line, outcome, timestamp) VALUES (?, ?, ?, ?)",
		s.session, line, outcome, time.Now(),
	)
	return err
}

// Recent returns up to limit entries across all sessions, oldest first.
// A limit of zero or less returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, line, outcome, timestamp FROM (
			SELECT id, session_id, line, outcome, timestamp FROM entries ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Session, &e.Line, &e.Outcome, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
