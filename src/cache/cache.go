// Package cache stores query results in a local SQLite file so repeated
// runs do not re-scan the Posts dump on BigQuery. Entries are keyed by a
// hash of the statement text; the language table is static, so identical
// statements mean identical results.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/alt-code/Research/src/table"
)

const schema = `
CREATE TABLE IF NOT EXISTS query_results (
	sql_hash   TEXT PRIMARY KEY,
	statement  TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Store is a SQLite-backed result cache.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached table for statement, with ok reporting a hit.
// Note that JSON storage turns numeric cells into float64 on the way back.
func (s *Store) Get(ctx context.Context, statement string) (*table.Table, bool, error) {
	var encoded string
	err := s.db.QueryRowContext(ctx,
		`SELECT result FROM query_results WHERE sql_hash = ?`, hashSQL(statement),
	).Scan(&encoded)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}

	var t table.Table
	if err := json.Unmarshal([]byte(encoded), &t); err != nil {
		return nil, false, fmt.Errorf("decode cache entry: %w", err)
	}
	return &t, true, nil
}

// Put stores the result for statement, replacing any prior entry.
func (s *Store) Put(ctx context.Context, statement string, t *table.Table) error {
	encoded, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO query_results (sql_hash, statement, result) VALUES (?, ?, ?)`,
		hashSQL(statement), statement, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func hashSQL(statement string) string {
	sum := sha256.Sum256([]byte(statement))
	return hex.EncodeToString(sum[:])
}
