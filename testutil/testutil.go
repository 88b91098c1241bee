// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/spart-awards/catalog"
	"github.com/danielhkuo/spart-awards/cliparse"
	"github.com/danielhkuo/spart-awards/db"
	"github.com/danielhkuo/spart-awards/store"
)

// SetupTestDB creates a fresh file-backed sqlite database with the full
// schema. Each test gets its own file under t.TempDir, so tests are hermetic
// and parallel-safe.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "spart_awards_test.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// One connection keeps sqlite writers queued instead of SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: "sqlite",
		AdminSecret:  "test-admin-secret",
	}
}

// TestCatalog returns a small fixed catalog: two categories, with nominee
// order chosen so index 0 of "play" is Lovestruck.
func TestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New([]catalog.Category{
		{
			ID:    "play",
			Title: "SPART Play of the Year",
			Nominees: []catalog.Nominee{
				{Name: "Lovestruck", Role: "Dir. Marcus Thorne"},
				{Name: "Midnight Rain", Role: "Dir. Maria Rodriguez"},
				{Name: "The Other Woman", Role: "Dir. Chen Wei"},
			},
		},
		{
			ID:    "lead_actor",
			Title: "Best Lead Actor",
			Nominees: []catalog.Nominee{
				{Name: "Eddie Lim", Role: "LS"},
				{Name: "Dayron Ooi", Role: "TDDUP"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return cat
}

// OpenVoting sets the voting status to open
func OpenVoting(t *testing.T, st *store.Store) {
	t.Helper()
	if err := st.SetStatus(context.Background(), "open"); err != nil {
		t.Fatalf("Failed to open voting: %v", err)
	}
}

// SeedVote inserts a vote record directly into the live ledger
func SeedVote(t *testing.T, conn *sql.DB, email, categoryTitle, nominee string, castAt time.Time) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (id, voter_email, category_title, nominee_name, cast_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), email, categoryTitle, nominee, castAt)
	if err != nil {
		t.Fatalf("Failed to seed vote: %v", err)
	}
}

// CountLedger returns the number of rows in the live vote table
func CountLedger(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote`).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
