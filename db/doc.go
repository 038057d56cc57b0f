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

The schema includes:

  - predio: Current status per parcel (one row per id, last write wins)
  - change_log: Append-only record of every status change
  - session: Actor login records, aggregated into the actor directory

# Relationships

	predio 1──* change_log (by predio_id, soft reference only)
	session rows stand alone, keyed by actor at read time

change_log deliberately has no foreign key: history must remain intact
independently of the current-state table.

# Indexes

Performance indexes on:

  - predio.section
  - change_log.(predio_id, created_at)
  - change_log.created_at
  - session.actor

# Dialect

The SQL sticks to the dialect shared by sqlite and postgres: $1
placeholders, ON CONFLICT upserts, and timestamps bound from Go rather
than NOW() defaults.
*/
package db
