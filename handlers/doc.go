// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Predio Track API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PredioHandler: Parcel listing, detail, and status writes
  - SessionHandler: Actor login records
  - StatsHandler: Section summaries, change history, actor directory

Handlers are created via constructor functions that accept *sql.DB and Config:

	predioHandler := handlers.NewPredioHandler(db, cfg)

# Status Writes

A status write validates before touching storage, then runs the
current-state upsert and the change-log append in one transaction:

	POST /predios/{id}/status → UpdateStatus

Unknown status values are rejected with 400 and leave no trace in either
table. An omitted status defaults to neutral.

# Reporting

	GET /predios         → List (optional ?sections=a,b filter)
	GET /predios/{id}    → Get (row + effective section + history)
	GET /stats/sections  → Summary (per-section counts)
	GET /changes         → History (?limit clamped to [1,500])
	GET /actors          → Actors (last seen, sections touched)

The section filter on List reads the stored column only; Summary applies
the change-log fallback. That asymmetry is intentional.

# Sessions

	POST /sessions → Login (actor required, sections optional)

All routes sit behind the shared-secret check in the auth package;
handlers assume every request is already authorized.
*/
package handlers
