// Package history persists completed throws in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"dicetable/internal/dice"
)

// Roll is one recorded throw.
type Roll struct {
	ID       int64
	Die0     int
	Die1     int
	Forced   bool
	RolledAt time.Time
}

// Store keeps the roll history in a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the roll history at path.
func Open(path string) (*Store, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS rolls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		die0 INTEGER NOT NULL,
		die1 INTEGER NOT NULL,
		forced INTEGER NOT NULL DEFAULT 0,
		rolled_at INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create rolls table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one completed throw.
func (s *Store) Record(ctx context.Context, o dice.Outcome) error {
	forced := 0
	if o.Forced {
		forced = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rolls (die0, die1, forced, rolled_at) VALUES (?, ?, ?, ?)`,
		o.Die0, o.Die1, forced, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("insert roll: %w", err)
	}
	return nil
}

// Recent returns the latest rolls, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Roll, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, die0, die1, forced, rolled_at FROM rolls ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query rolls: %w", err)
	}
	defer rows.Close()

	var rolls []Roll
	for rows.Next() {
		var r Roll
		var forced int
		var millis int64
		if err := rows.Scan(&r.ID, &r.Die0, &r.Die1, &forced, &millis); err != nil {
			return nil, fmt.Errorf("scan roll: %w", err)
		}
		r.Forced = forced != 0
		r.RolledAt = time.UnixMilli(millis).UTC()
		rolls = append(rolls, r)
	}
	return rolls, rows.Err()
}
