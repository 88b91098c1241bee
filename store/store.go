// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/spart-awards/models"
)

var ErrArchiveNotFound = errors.New("archive not found")

const votingStatusKey = "voting_status"

// Vote is one recorded (voter, category, nominee) choice. Records store the
// resolved category title and nominee name, not catalog positions, so they
// stay readable even if the catalog changes between rounds.
type Vote struct {
	ID            string
	VoterEmail    string
	CategoryTitle string
	NomineeName   string
	CastAt        time.Time
}

// Archive identifies one frozen voting round.
type Archive struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Store persists the voting status flag, the live vote ledger, and archived
// rounds. The storage engine is whatever driver backs the *sql.DB: PostgreSQL
// in production, embedded SQLite for single-machine deployments and tests.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Status returns the current voting status. Any read failure (missing row,
// I/O error, unexpected value) yields "closed": a storage outage must never
// accidentally open voting.
func (s *Store) Status(ctx context.Context) string {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE key = $1
	`, votingStatusKey).Scan(&value)

	if err != nil {
		if err != sql.ErrNoRows {
			slog.Error("failed to read voting status, treating as closed", "error", err)
		}
		return models.StatusClosed
	}
	if value != models.StatusOpen {
		return models.StatusClosed
	}
	return models.StatusOpen
}

// SetStatus upserts the voting status flag. Idempotent: repeated writes of
// the same value are no-ops. Write errors surface to the caller.
func (s *Store) SetStatus(ctx context.Context, status string) error {
	if status != models.StatusOpen && status != models.StatusClosed {
		return fmt.Errorf("invalid voting status %q", status)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, votingStatusKey, status)
	if err != nil {
		return fmt.Errorf("failed to set voting status: %w", err)
	}
	return nil
}

// AppendVotes writes one ballot's accepted selections in a single
// transaction. Records are independent and immutable once written, so
// concurrent ballots never contend beyond row insertion.
func (s *Store) AppendVotes(ctx context.Context, votes []Vote) error {
	if len(votes) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, v := range votes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO vote (id, voter_email, category_title, nominee_name, cast_at)
			VALUES ($1, $2, $3, $4, $5)
		`, v.ID, v.VoterEmail, v.CategoryTitle, v.NomineeName, v.CastAt)
		if err != nil {
			return fmt.Errorf("failed to insert vote: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit votes: %w", err)
	}
	return nil
}

// ListVotes returns every record in the live ledger, oldest first.
func (s *Store) ListVotes(ctx context.Context) ([]Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, voter_email, category_title, nominee_name, cast_at
		FROM vote
		ORDER BY cast_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	return scanVotes(rows)
}

// CountVotes returns the number of records in the live ledger.
func (s *Store) CountVotes(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vote`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

// ArchiveAndReset snapshots the live ledger under a new archive, clears it,
// and closes voting in one transaction. The clear deletes only the rows the
// snapshot actually copied: on engines with per-statement snapshots (postgres
// at read committed) a ballot committing between the copy and the clear would
// otherwise be deleted without ever being archived. Scoping the delete to the
// archived ids leaves such a ballot in the fresh ledger instead.
// Safe to repeat: an empty ledger archives as an empty round.
func (s *Store) ArchiveAndReset(ctx context.Context) (Archive, error) {
	now := time.Now().UTC()
	arch := Archive{
		ID:        uuid.NewString(),
		Name:      "votes_" + now.Format("2006-01-02T15-04-05"),
		CreatedAt: now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO archive (id, name, created_at)
		VALUES ($1, $2, $3)
	`, arch.ID, arch.Name, arch.CreatedAt)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to create archive: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO archived_vote (id, archive_id, voter_email, category_title, nominee_name, cast_at)
		SELECT id, CAST($1 AS TEXT), voter_email, category_title, nominee_name, cast_at
		FROM vote
	`, arch.ID)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to snapshot votes: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM vote
		WHERE id IN (SELECT id FROM archived_vote WHERE archive_id = $1)
	`, arch.ID)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to clear votes: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, votingStatusKey, models.StatusClosed)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to close voting: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Archive{}, fmt.Errorf("failed to commit archive: %w", err)
	}

	slog.Info("round archived", "archive_id", arch.ID, "archive_name", arch.Name)
	return arch, nil
}

// ListArchives returns all archived rounds, newest first.
func (s *Store) ListArchives(ctx context.Context) ([]Archive, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at
		FROM archive
		ORDER BY created_at DESC, name DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query archives: %w", err)
	}
	defer rows.Close()

	archives := []Archive{}
	for rows.Next() {
		var a Archive
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archive: %w", err)
		}
		archives = append(archives, a)
	}
	return archives, rows.Err()
}

// Archive looks up one archived round by id.
func (s *Store) Archive(ctx context.Context, archiveID string) (Archive, error) {
	var a Archive
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM archive WHERE id = $1
	`, archiveID).Scan(&a.ID, &a.Name, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return Archive{}, ErrArchiveNotFound
	}
	if err != nil {
		return Archive{}, fmt.Errorf("failed to query archive: %w", err)
	}
	return a, nil
}

// ArchivedVotes returns the records frozen under an archive, oldest first.
func (s *Store) ArchivedVotes(ctx context.Context, archiveID string) ([]Vote, error) {
	if _, err := s.Archive(ctx, archiveID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, voter_email, category_title, nominee_name, cast_at
		FROM archived_vote
		WHERE archive_id = $1
		ORDER BY cast_at, id
	`, archiveID)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived votes: %w", err)
	}
	defer rows.Close()

	return scanVotes(rows)
}

func scanVotes(rows *sql.Rows) ([]Vote, error) {
	votes := []Vote{}
	for rows.Next() {
		var v Vote
		if err := rows.Scan(&v.ID, &v.VoterEmail, &v.CategoryTitle, &v.NomineeName, &v.CastAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}
