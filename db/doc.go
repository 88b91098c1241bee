// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - settings: key/value pairs; voting status under 'voting_status'
  - vote: the live ledger, one row per recorded choice
  - archive: one row per archived round
  - archived_vote: frozen ledger rows, keyed by archive

# Relationships

	archive 1──* archived_vote (ON DELETE CASCADE)

The DDL avoids engine-specific defaults (no NOW()) so the same schema runs
on PostgreSQL and SQLite; timestamps are always bound by the caller.
*/
package db
