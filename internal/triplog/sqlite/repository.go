// Package sqlite provides a SQLite-backed triplog.Repository.
//
// WAL mode is enabled on Open so readers never block the writer: checkout
// goroutines append events while a status or receipt query may be reading.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pragadeesh891/trolley/internal/triplog"

	// Pure-Go SQLite driver; no CGO needed in the container build.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS trip_events (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id  TEXT NOT NULL,
    kind        TEXT NOT NULL,
    step        TEXT NOT NULL DEFAULT '',
    detail      TEXT NOT NULL DEFAULT '',
    trace_id    TEXT NOT NULL DEFAULT '',
    span_id     TEXT NOT NULL DEFAULT '',
    at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trip_events_session ON trip_events(session_id, at);
CREATE INDEX IF NOT EXISTS idx_trip_events_trace ON trip_events(trace_id);
`

// Repository is the SQLite implementation of triplog.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// The modernc driver registers itself as "sqlite", not "sqlite3".
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("triplog: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("triplog: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save appends one trip event. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, e *triplog.Event) error {
	const q = `
		INSERT INTO trip_events (session_id, kind, step, detail, trace_id, span_id, at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		e.SessionID,
		string(e.Kind),
		e.Step,
		e.Detail,
		e.TraceID,
		e.SpanID,
		e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("triplog: save event for %q: %w", e.SessionID, err)
	}
	return nil
}

// BySession returns all events of one session in append order. Used by the
// receipt reconstruction endpoint and by tests.
func (r *Repository) BySession(ctx context.Context, sessionID string) ([]triplog.Event, error) {
	const q = `
		SELECT session_id, kind, step, detail, trace_id, span_id, at
		FROM   trip_events
		WHERE  session_id = ?
		ORDER  BY id`

	rows, err := r.db.QueryContext(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("triplog: query session %q: %w", sessionID, err)
	}
	defer rows.Close()

	var out []triplog.Event
	for rows.Next() {
		var e triplog.Event
		var at string
		if err := rows.Scan(&e.SessionID, &e.Kind, &e.Step, &e.Detail, &e.TraceID, &e.SpanID, &at); err != nil {
			return nil, fmt.Errorf("triplog: scan event: %w", err)
		}
		if e.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("triplog: parse time %q: %w", at, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
