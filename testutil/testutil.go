// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/predio-track/cliparse"
	"github.com/danielhkuo/predio-track/db"
)

// TestAPIKey is the shared secret used by test configurations.
const TestAPIKey = "test-api-key"

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
// The pool is pinned to one connection so every query sees the same
// in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
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
		DatabaseURL:  ":memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		APIKey:       TestAPIKey,
	}
}

// StringPtr returns a pointer to s, for optional request/row fields.
func StringPtr(s string) *string {
	return &s
}

// SeedPredio inserts a current-state row directly.
func SeedPredio(t *testing.T, conn *sql.DB, id, status string, section *string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO predio (id, status, section, updated_at)
		VALUES ($1, $2, $3, $4)
	`, id, status, section, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to seed predio: %v", err)
	}
}

// SeedChange inserts a change-log row with an explicit timestamp so tests
// can control history ordering.
func SeedChange(t *testing.T, conn *sql.DB, predioID, status string, section, actor *string, createdAt time.Time) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO change_log (id, predio_id, status, section, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), predioID, status, section, actor, createdAt.UTC())
	if err != nil {
		t.Fatalf("Failed to seed change: %v", err)
	}
}

// SeedSession inserts a session row with an explicit timestamp.
func SeedSession(t *testing.T, conn *sql.DB, actor, sections string, createdAt time.Time) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO session (id, actor, sections, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), actor, sections, createdAt.UTC())
	if err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}
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
