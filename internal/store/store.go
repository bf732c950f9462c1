// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store archives batch resolution runs in a SQLite database.
//
// The archive is append-only output persistence: each run is recorded
// after the sources have been queried and the CSV written. It is never
// consulted during resolution, so it is not a cache.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/chemreg/pkg/types"
)

// Store manages the resolution archive database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the archive database at cfg.ArchivePath and
// creates the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.ArchivePath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			substances INTEGER NOT NULL,
			rows INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			substance TEXT NOT NULL,
			cas TEXT NOT NULL,
			synonym TEXT NOT NULL,
			compound_source TEXT NOT NULL,
			synonym_source TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_run_id ON results(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_substance ON results(substance)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun inserts a run and its rows in one transaction and returns the
// run ID.
func (s *Store) RecordRun(startedAt time.Time, substances int, rows []types.OutputRow) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (started_at, substances, rows) VALUES (?, ?, ?)`,
		startedAt.UTC().Format(time.RFC3339), substances, len(rows))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO results
		(run_id, substance, cas, synonym, compound_source, synonym_source)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(runID, row.Substance, row.CAS, row.Synonym, row.CompoundSource, row.SynonymSource); err != nil {
			return 0, fmt.Errorf("inserting row for %s: %w", row.Substance, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Lookup returns the rows recorded for a substance name (exact match) in
// the most recent run that mentions it.
func (s *Store) Lookup(substance string) ([]types.OutputRow, error) {
	rows, err := s.db.Query(`SELECT substance, cas, synonym, compound_source, synonym_source
		FROM results
		WHERE substance = ? AND run_id = (
			SELECT MAX(run_id) FROM results WHERE substance = ?
		)
		ORDER BY rowid
		LIMIT ?`, substance, substance, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var out []types.OutputRow
	for rows.Next() {
		var r types.OutputRow
		if err := rows.Scan(&r.Substance, &r.CAS, &r.Synonym, &r.CompoundSource, &r.SynonymSource); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
