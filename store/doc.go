// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists voting state: the open/closed status flag, the live
vote ledger, and archived rounds.

# Storage Engine

Store wraps a *sql.DB and works against PostgreSQL (lib/pq) or embedded
SQLite (modernc.org/sqlite); the engine is selected by driver at startup.
The SQL sticks to the dialect both accept.

# Voting Status

	status := st.Status(ctx)        // "open" or "closed"
	err := st.SetStatus(ctx, "open")

Status reads are fail-closed: a missing row or storage error yields "closed"
so an outage can never accidentally open voting. Writes surface errors.

# Vote Ledger

	err := st.AppendVotes(ctx, votes) // one transaction per ballot
	votes, err := st.ListVotes(ctx)

The ledger is append-only; records are immutable once written and removed
only by ArchiveAndReset. There is no uniqueness constraint on
(voter, category): repeat submissions accumulate records, matching the
original event's behavior.

# Round Archival

	arch, err := st.ArchiveAndReset(ctx)

Snapshot, clear, and close happen in a single transaction, so a concurrent
ballot lands wholly in the snapshot or wholly in the fresh ledger. Archives
are retrieved with ListArchives, Archive, and ArchivedVotes.
*/
package store
