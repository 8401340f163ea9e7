// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache memoizes successful structure decodes in a SQLite
// database. Idcodes are content-addressed, so cached results never go
// stale; a cache hit skips the external decoder entirely.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed decode cache. It satisfies decode.Cache.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS decodes (
		idcode TEXT PRIMARY KEY,
		smiles TEXT NOT NULL,
		decoded_at TEXT NOT NULL
	)`)
	return err
}

// Lookup returns the cached SMILES for any of the given idcodes. Missing
// entries are simply absent from the result.
func (s *Store) Lookup(ctx context.Context, idcodes []string) (map[string]string, error) {
	if len(idcodes) == 0 {
		return map[string]string{}, nil
	}

	placeholders := strings.Repeat("?,", len(idcodes))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(idcodes))
	for i, id := range idcodes {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT idcode, smiles FROM decodes WHERE idcode IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying decode cache: %w", err)
	}
	defer rows.Close()

	hits := make(map[string]string)
	for rows.Next() {
		var idcode, smiles string
		if err := rows.Scan(&idcode, &smiles); err != nil {
			return nil, fmt.Errorf("scanning cache row: %w", err)
		}
		hits[idcode] = smiles
	}
	return hits, rows.Err()
}

// Put records successful decodes, replacing any existing entries.
func (s *Store) Put(ctx context.Context, decoded map[string]string) error {
	if len(decoded) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning cache transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO decodes (idcode, smiles, decoded_at) VALUES (?, ?, ?)
		 ON CONFLICT(idcode) DO UPDATE SET
			smiles=excluded.smiles, decoded_at=excluded.decoded_at`)
	if err != nil {
		return fmt.Errorf("preparing cache insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for idcode, smiles := range decoded {
		if _, err := stmt.ExecContext(ctx, idcode, smiles, now); err != nil {
			return fmt.Errorf("caching decode for %s: %w", idcode, err)
		}
	}

	return tx.Commit()
}
