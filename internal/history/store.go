// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a ledger of completed conversions in SQLite.
// Recording is optional; a run without a configured ledger path leaves
// no state behind.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wmelvin/libreoffice-doc-to-txt/pkg/types"
)

const defaultListLimit = 50

// Record is one ledger entry for a completed conversion.
type Record struct {
	Source        string
	Output        string
	SourceModTime time.Time
	ConvertedAt   time.Time
	Status        types.ConversionStatus
}

// Store manages the conversion ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			output TEXT NOT NULL,
			source_mod_time TEXT NOT NULL,
			converted_at TEXT NOT NULL,
			status TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Add appends a record to the ledger.
func (s *Store) Add(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source, output, source_mod_time, converted_at, status)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Source, rec.Output,
		rec.SourceModTime.UTC().Format(time.RFC3339),
		rec.ConvertedAt.UTC().Format(time.RFC3339),
		string(rec.Status),
	)
	if err != nil {
		return fmt.Errorf("recording conversion of %s: %w", rec.Source, err)
	}
	return nil
}

// ListOptions filters a ledger query.
type ListOptions struct {
	// Source restricts results to records whose source path contains
	// this substring. Empty matches everything.
	Source string

	// Limit caps the number of results (0 = default of 50).
	Limit int
}

// List returns ledger records, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT source, output, source_mod_time, converted_at, status
		FROM conversions`
	args := []any{}
	if opts.Source != "" {
		query += ` WHERE source LIKE ?`
		args = append(args, "%"+opts.Source+"%")
	}
	query += ` ORDER BY rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying ledger: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var modTime, convertedAt, status string
		if err := rows.Scan(&rec.Source, &rec.Output, &modTime, &convertedAt, &status); err != nil {
			return nil, fmt.Errorf("scanning ledger row: %w", err)
		}
		rec.SourceModTime, _ = time.Parse(time.RFC3339, modTime)
		rec.ConvertedAt, _ = time.Parse(time.RFC3339, convertedAt)
		rec.Status = types.ConversionStatus(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger rows: %w", err)
	}
	return records, nil
}
