// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to the dialect both engines (PostgreSQL, SQLite)
// accept: no NOW() defaults, timestamps are always bound explicitly.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Settings (voting status lives under key 'voting_status')
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Live vote ledger (append-only; cleared only by round archival)
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    voter_email TEXT NOT NULL,
    category_title TEXT NOT NULL,
    nominee_name TEXT NOT NULL,
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_voter_email ON vote(voter_email);
CREATE INDEX IF NOT EXISTS idx_vote_cast_at ON vote(cast_at);

-- Archived rounds
CREATE TABLE IF NOT EXISTS archive (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS archived_vote (
    id TEXT PRIMARY KEY,
    archive_id TEXT NOT NULL REFERENCES archive(id) ON DELETE CASCADE,
    voter_email TEXT NOT NULL,
    category_title TEXT NOT NULL,
    nominee_name TEXT NOT NULL,
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_archived_vote_archive ON archived_vote(archive_id);
`
