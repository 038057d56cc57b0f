// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// Timestamps are always bound from Go so the same statements work on
// both sqlite and postgres; the schema carries no NOW() defaults.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Current parcel state, one row per predio
CREATE TABLE IF NOT EXISTS predio (
    id TEXT PRIMARY KEY,
    status TEXT NOT NULL DEFAULT 'neutral' CHECK (status IN ('rojo', 'azul', 'neutral')),
    section TEXT,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_predio_section ON predio(section);

-- Append-only status history; no foreign key to predio on purpose,
-- log entries must survive whatever happens to the current row
CREATE TABLE IF NOT EXISTS change_log (
    id TEXT PRIMARY KEY,
    predio_id TEXT NOT NULL,
    status TEXT NOT NULL,
    section TEXT,
    actor TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_change_log_predio_created ON change_log(predio_id, created_at);
CREATE INDEX IF NOT EXISTS idx_change_log_created ON change_log(created_at);

-- Actor logins; insert-only, aggregated at read time
CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    actor TEXT NOT NULL,
    sections TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_actor ON session(actor);
`
