// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the persistence layer: current parcel state, the
append-only change log, and the read-time derivations built over them.

# Store Types

Each store is a small struct over a DBTX (either *sql.DB or *sql.Tx):

  - Predios: atomic upsert and listing of current parcel state
  - Changes: append-only status history with clamped listing
  - Resolver: effective-section derivation for one parcel
  - Stats: per-section status counts over the full parcel set
  - Sessions: actor logins and the folded actor directory

# Write Path

A status write is the pair upsert + append, run in one transaction by the
caller so current state and history cannot diverge:

	tx, _ := conn.BeginTx(ctx, nil)
	defer tx.Rollback()
	store.NewPredios(tx).Upsert(ctx, id, status, section)
	store.NewChanges(tx).Append(ctx, id, status, section, actor)
	tx.Commit()

# Section Resolution

A parcel's reporting section is its stored section when set, otherwise the
section of its most recent change-log entry that carried one, otherwise
models.SectionUnknown. Resolver applies the rule per parcel; Summarize
inlines it as a correlated subquery so reporting stays one query.

Listing is the exception: Predios.List filters on the stored column only,
so a parcel whose section lives only in history will not match a section
filter even though Summarize groups it correctly.

# Limits

Changes.Recent and Changes.RecentFor clamp the requested limit into
[MinHistoryLimit, MaxHistoryLimit] = [1, 500] instead of rejecting it.
*/
package store
