// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	dbschema "github.com/danielhkuo/spart-awards/db"
	"github.com/danielhkuo/spart-awards/models"
)

func setupStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store_test.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Serialize access through one connection so concurrent writers queue
	// instead of tripping SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	if err := dbschema.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return New(conn), conn
}

func testVote(email, category, nominee string, castAt time.Time) Vote {
	return Vote{
		ID:            uuid.NewString(),
		VoterEmail:    email,
		CategoryTitle: category,
		NomineeName:   nominee,
		CastAt:        castAt,
	}
}

func TestStatus_FailClosedDefault(t *testing.T) {
	st, _ := setupStore(t)

	// Fresh database, no settings row at all
	if got := st.Status(context.Background()); got != models.StatusClosed {
		t.Errorf("Expected closed on missing status, got %q", got)
	}
}

func TestStatus_FailClosedOnGarbage(t *testing.T) {
	st, conn := setupStore(t)

	_, err := conn.Exec(`INSERT INTO settings (key, value) VALUES ($1, $2)`, "voting_status", "banana")
	if err != nil {
		t.Fatalf("Failed to seed settings: %v", err)
	}

	if got := st.Status(context.Background()); got != models.StatusClosed {
		t.Errorf("Expected closed on unexpected value, got %q", got)
	}
}

func TestSetStatus(t *testing.T) {
	st, _ := setupStore(t)
	ctx := context.Background()

	if err := st.SetStatus(ctx, models.StatusOpen); err != nil {
		t.Fatalf("SetStatus(open) error = %v", err)
	}
	if got := st.Status(ctx); got != models.StatusOpen {
		t.Errorf("Expected open, got %q", got)
	}

	// Repeated writes of the same value are legal no-ops
	if err := st.SetStatus(ctx, models.StatusOpen); err != nil {
		t.Fatalf("Second SetStatus(open) error = %v", err)
	}
	if got := st.Status(ctx); got != models.StatusOpen {
		t.Errorf("Expected open after repeat, got %q", got)
	}

	if err := st.SetStatus(ctx, models.StatusClosed); err != nil {
		t.Fatalf("SetStatus(closed) error = %v", err)
	}
	if got := st.Status(ctx); got != models.StatusClosed {
		t.Errorf("Expected closed, got %q", got)
	}
}

func TestSetStatus_RejectsUnknownValue(t *testing.T) {
	st, _ := setupStore(t)

	if err := st.SetStatus(context.Background(), "paused"); err == nil {
		t.Error("Expected error for unknown status value")
	}
}

func TestAppendAndListVotes(t *testing.T) {
	st, _ := setupStore(t)
	ctx := context.Background()

	base := time.Date(2025, 11, 1, 19, 0, 0, 0, time.UTC)
	votes := []Vote{
		testVote("a@x.com", "SPART Play of the Year", "Lovestruck", base),
		testVote("a@x.com", "Best Lead Actor", "Eddie Lim", base),
		testVote("b@x.com", "SPART Play of the Year", "Midnight Rain", base.Add(time.Minute)),
	}

	if err := st.AppendVotes(ctx, votes); err != nil {
		t.Fatalf("AppendVotes() error = %v", err)
	}

	got, err := st.ListVotes(ctx)
	if err != nil {
		t.Fatalf("ListVotes() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 votes, got %d", len(got))
	}

	// Oldest first
	if got[2].VoterEmail != "b@x.com" {
		t.Errorf("Expected newest vote last, got %q", got[2].VoterEmail)
	}
	if got[0].CategoryTitle != "SPART Play of the Year" && got[0].CategoryTitle != "Best Lead Actor" {
		t.Errorf("Unexpected category %q", got[0].CategoryTitle)
	}

	count, err := st.CountVotes(ctx)
	if err != nil {
		t.Fatalf("CountVotes() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountVotes() = %d, want 3", count)
	}
}

func TestAppendVotes_Empty(t *testing.T) {
	st, _ := setupStore(t)

	if err := st.AppendVotes(context.Background(), nil); err != nil {
		t.Errorf("AppendVotes(nil) error = %v", err)
	}
}

// Submissions are independent appends; concurrent ballots must all land.
func TestAppendVotes_Concurrent(t *testing.T) {
	st, _ := setupStore(t)
	ctx := context.Background()

	const ballots = 20
	var wg sync.WaitGroup
	errs := make(chan error, ballots)

	for i := 0; i < ballots; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v := testVote("voter@x.com", "SPART Play of the Year", "Lovestruck", time.Now().UTC())
			errs <- st.AppendVotes(ctx, []Vote{v})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Concurrent append failed: %v", err)
		}
	}

	count, err := st.CountVotes(ctx)
	if err != nil {
		t.Fatalf("CountVotes() error = %v", err)
	}
	if count != ballots {
		t.Errorf("Expected %d votes, got %d", ballots, count)
	}
}

func TestArchiveAndReset(t *testing.T) {
	st, _ := setupStore(t)
	ctx := context.Background()

	if err := st.SetStatus(ctx, models.StatusOpen); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	base := time.Date(2025, 11, 1, 19, 0, 0, 0, time.UTC)
	votes := []Vote{
		testVote("a@x.com", "SPART Play of the Year", "Lovestruck", base),
		testVote("b@x.com", "SPART Play of the Year", "Lovestruck", base.Add(time.Minute)),
	}
	if err := st.AppendVotes(ctx, votes); err != nil {
		t.Fatalf("AppendVotes() error = %v", err)
	}

	arch, err := st.ArchiveAndReset(ctx)
	if err != nil {
		t.Fatalf("ArchiveAndReset() error = %v", err)
	}
	if arch.ID == "" || arch.Name == "" {
		t.Fatalf("Expected archive identifiers, got %+v", arch)
	}

	// Live ledger is empty
	count, err := st.CountVotes(ctx)
	if err != nil {
		t.Fatalf("CountVotes() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty live ledger, got %d votes", count)
	}

	// Voting closed
	if got := st.Status(ctx); got != models.StatusClosed {
		t.Errorf("Expected closed after reset, got %q", got)
	}

	// Prior round intact under the archive id
	archived, err := st.ArchivedVotes(ctx, arch.ID)
	if err != nil {
		t.Fatalf("ArchivedVotes() error = %v", err)
	}
	if len(archived) != 2 {
		t.Fatalf("Expected 2 archived votes, got %d", len(archived))
	}
	if archived[0].NomineeName != "Lovestruck" {
		t.Errorf("Unexpected archived nominee %q", archived[0].NomineeName)
	}
}

// Repeated resets on an empty ledger are no-ops beyond the status reset:
// each produces an empty archive and leaves voting closed.
func TestArchiveAndReset_EmptyLedger(t *testing.T) {
	st, _ := setupStore(t)
	ctx := context.Background()

	arch, err := st.ArchiveAndReset(ctx)
	if err != nil {
		t.Fatalf("ArchiveAndReset() error = %v", err)
	}

	archived, err := st.ArchivedVotes(ctx, arch.ID)
	if err != nil {
		t.Fatalf("ArchivedVotes() error = %v", err)
	}
	if len(archived) != 0 {
		t.Errorf("Expected empty archive, got %d votes", len(archived))
	}
	if got := st.Status(ctx); got != models.StatusClosed {
		t.Errorf("Expected closed, got %q", got)
	}
}

// Archived records keep their original vote ids. The id is what scopes the
// ledger clear to the snapshotted rows, and callers reading an archive must
// see each vote's own id, not the archive's.
func TestArchiveAndReset_PreservesVoteIDs(t *testing.T) {
	st, _ := setupStore(t)
	ctx := context.Background()

	base := time.Date(2025, 11, 1, 19, 0, 0, 0, time.UTC)
	votes := []Vote{
		testVote("a@x.com", "SPART Play of the Year", "Lovestruck", base),
		testVote("b@x.com", "SPART Play of the Year", "Midnight Rain", base.Add(time.Minute)),
	}
	if err := st.AppendVotes(ctx, votes); err != nil {
		t.Fatalf("AppendVotes() error = %v", err)
	}

	arch, err := st.ArchiveAndReset(ctx)
	if err != nil {
		t.Fatalf("ArchiveAndReset() error = %v", err)
	}

	archived, err := st.ArchivedVotes(ctx, arch.ID)
	if err != nil {
		t.Fatalf("ArchivedVotes() error = %v", err)
	}
	if len(archived) != 2 {
		t.Fatalf("Expected 2 archived votes, got %d", len(archived))
	}
	for i, v := range votes {
		if archived[i].ID != v.ID {
			t.Errorf("Archived vote %d id = %q, want %q", i, archived[i].ID, v.ID)
		}
		if archived[i].ID == arch.ID {
			t.Errorf("Archived vote %d carries the archive id instead of its own", i)
		}
	}
}

// A ballot committing while a reset runs must land either in the snapshot or
// in the fresh ledger. Every appended vote is accounted for afterwards:
// archive and ledger partition the set, nothing is silently dropped.
func TestArchiveAndReset_ConcurrentBallotNotLost(t *testing.T) {
	st, _ := setupStore(t)
	ctx := context.Background()

	const ballots = 20
	ids := make([]string, ballots)
	votes := make([]Vote, ballots)
	for i := range votes {
		votes[i] = testVote("voter@x.com", "SPART Play of the Year", "Lovestruck", time.Now().UTC())
		ids[i] = votes[i].ID
	}

	var wg sync.WaitGroup
	errs := make(chan error, ballots+1)

	for i := 0; i < ballots; i++ {
		wg.Add(1)
		go func(v Vote) {
			defer wg.Done()
			errs <- st.AppendVotes(ctx, []Vote{v})
		}(votes[i])
	}

	wg.Add(1)
	var arch Archive
	go func() {
		defer wg.Done()
		var err error
		arch, err = st.ArchiveAndReset(ctx)
		errs <- err
	}()

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Concurrent operation failed: %v", err)
		}
	}

	archived, err := st.ArchivedVotes(ctx, arch.ID)
	if err != nil {
		t.Fatalf("ArchivedVotes() error = %v", err)
	}
	live, err := st.ListVotes(ctx)
	if err != nil {
		t.Fatalf("ListVotes() error = %v", err)
	}

	seen := make(map[string]int, ballots)
	for _, v := range archived {
		seen[v.ID]++
	}
	for _, v := range live {
		seen[v.ID]++
	}

	for _, id := range ids {
		if seen[id] != 1 {
			t.Errorf("Vote %s appears %d times across archive and ledger, want exactly 1", id, seen[id])
		}
	}
	if len(archived)+len(live) != ballots {
		t.Errorf("Archive (%d) + ledger (%d) = %d votes, want %d", len(archived), len(live), len(archived)+len(live), ballots)
	}
}

func TestListArchives_NewestFirst(t *testing.T) {
	st, conn := setupStore(t)
	ctx := context.Background()

	// Seed archives with distinct creation times directly; ArchiveAndReset
	// within one second would collide on the timestamp-derived name.
	base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"votes_round1", "votes_round2", "votes_round3"} {
		_, err := conn.Exec(`
			INSERT INTO archive (id, name, created_at) VALUES ($1, $2, $3)
		`, uuid.NewString(), name, base.Add(time.Duration(i)*time.Hour))
		if err != nil {
			t.Fatalf("Failed to seed archive: %v", err)
		}
	}

	archives, err := st.ListArchives(ctx)
	if err != nil {
		t.Fatalf("ListArchives() error = %v", err)
	}
	if len(archives) != 3 {
		t.Fatalf("Expected 3 archives, got %d", len(archives))
	}
	if archives[0].Name != "votes_round3" || archives[2].Name != "votes_round1" {
		t.Errorf("Expected newest first, got %q .. %q", archives[0].Name, archives[2].Name)
	}
}

func TestArchivedVotes_NotFound(t *testing.T) {
	st, _ := setupStore(t)

	_, err := st.ArchivedVotes(context.Background(), "no-such-archive")
	if !errors.Is(err, ErrArchiveNotFound) {
		t.Errorf("Expected ErrArchiveNotFound, got %v", err)
	}
}
