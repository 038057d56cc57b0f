// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func TestCreateSchemaIdempotent(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	// Second call must be a no-op, not an error
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema should be idempotent: %v", err)
	}

	for _, table := range []string{"predio", "change_log", "session"} {
		var count int
		err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count)
		if err != nil {
			t.Errorf("table %s not queryable: %v", table, err)
		}
		if count != 0 {
			t.Errorf("table %s should start empty, got %d rows", table, count)
		}
	}
}

func TestSchemaStatusCheck(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO predio (id, status, updated_at)
		VALUES ('P1', 'verde', CURRENT_TIMESTAMP)
	`)
	if err == nil {
		t.Error("expected CHECK constraint to reject unknown status")
	}
}
