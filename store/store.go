// Package store persists benchmark index levels in a local SQLite database,
// so that fetched quotes survive between runs and reports can merge them into
// an uploaded portfolio document.
package store

import (
	"database/sql"
	"fmt"

	"github.com/etnz/fundwatch/date"
	// register the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// Store is a benchmark level database. It is not safe for concurrent writers;
// the command layer opens one per invocation.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the schema
// exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening benchmark store %q: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS levels(
		benchmark TEXT NOT NULL,
		day       TEXT NOT NULL,
		level     REAL NOT NULL,
		PRIMARY KEY(benchmark, day)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing benchmark store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Append records one benchmark level. An existing level on the same day is
// overwritten: the last write wins, like everywhere else in the pipeline.
func (s *Store) Append(benchmark string, day date.Date, level float64) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO levels(benchmark, day, level) VALUES(?,?,?)`,
		benchmark, day.String(), level)
	if err != nil {
		return fmt.Errorf("storing %s level on %s: %w", benchmark, day, err)
	}
	return nil
}

// AppendHistory records every point of a history under one benchmark name.
func (s *Store) AppendHistory(benchmark string, h *date.History[float64]) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storing %s history: %w", benchmark, err)
	}
	for day, level := range h.Values() {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO levels(benchmark, day, level) VALUES(?,?,?)`,
			benchmark, day.String(), level); err != nil {
			tx.Rollback()
			return fmt.Errorf("storing %s level on %s: %w", benchmark, day, err)
		}
	}
	return tx.Commit()
}

// History reads the levels of one benchmark within the range, in chronological
// order. An unknown benchmark yields an empty history, not an error.
func (s *Store) History(benchmark string, r date.Range) (*date.History[float64], error) {
	rows, err := s.db.Query(`SELECT day, level FROM levels
		WHERE benchmark=? AND day>=? AND day<=? ORDER BY day ASC`,
		benchmark, r.From.String(), r.To.String())
	if err != nil {
		return nil, fmt.Errorf("reading %s levels: %w", benchmark, err)
	}
	defer rows.Close()

	h := &date.History[float64]{}
	for rows.Next() {
		var day string
		var level float64
		if err := rows.Scan(&day, &level); err != nil {
			return nil, fmt.Errorf("reading %s levels: %w", benchmark, err)
		}
		d, err := date.Parse(day)
		if err != nil {
			return nil, fmt.Errorf("reading %s levels: corrupt day %q: %w", benchmark, day, err)
		}
		h.Append(d, level)
	}
	return h, rows.Err()
}

// Benchmarks lists the distinct benchmark names present in the store, sorted.
func (s *Store) Benchmarks() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT benchmark FROM levels ORDER BY benchmark ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing benchmarks: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing benchmarks: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
